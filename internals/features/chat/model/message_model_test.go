package model

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestValidateTarget(t *testing.T) {
	group := uuid.New()
	receiver := uuid.New()
	nilID := uuid.Nil

	tests := []struct {
		name    string
		msg     MessageModel
		wantErr bool
	}{
		{"group message", MessageModel{MessageGroupID: &group}, false},
		{"direct message", MessageModel{MessageReceiverID: &receiver}, false},
		{"both targets", MessageModel{MessageGroupID: &group, MessageReceiverID: &receiver}, true},
		{"no target", MessageModel{}, true},
		{"nil uuid counts as unset", MessageModel{MessageGroupID: &nilID}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.msg.ValidateTarget()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrMessageTarget)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
