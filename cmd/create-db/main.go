package main

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"os/exec"
	"strings"

	"mentorhub_backend/internals/configs"
)

func main() {
	os.Exit(run())
}

func run() int {
	configs.LoadEnv()

	reader := bufio.NewReader(os.Stdin)
	dbName := configs.GetEnv("DB_NAME", "mentorhub")

	fmt.Println("🗄️  Database setup helper")
	fmt.Printf("   Target database: %s\n\n", dbName)

	user := prompt(reader, "Postgres superuser", configs.GetEnv("DB_USER", "postgres"))
	password := prompt(reader, "Password (leave empty to use peer auth / PGPASSWORD)", "")
	host := configs.GetEnv("DB_HOST", "localhost")
	port := configs.GetEnv("DB_PORT", "5432")

	env := os.Environ()
	if password != "" {
		env = append(env, "PGPASSWORD="+password)
	}

	exists, err := databaseExists(env, user, host, port, dbName)
	if err != nil {
		log.Printf("❌ Could not check for existing database: %v", err)
		printManualFallback(dbName)
		return 1
	}
	if exists {
		log.Printf("✅ Database %q already exists, nothing to do.", dbName)
		return 0
	}

	log.Printf("✨ Creating database %q...", dbName)
	create := exec.Command("psql",
		"-U", user, "-h", host, "-p", port,
		"-d", "postgres",
		"-c", fmt.Sprintf(`CREATE DATABASE %q ENCODING 'UTF8'`, dbName),
	)
	create.Env = env
	if out, err := create.CombinedOutput(); err != nil {
		log.Printf("❌ CREATE DATABASE failed: %v\n%s", err, strings.TrimSpace(string(out)))
		printManualFallback(dbName)
		return 1
	}

	log.Printf("🎉 Database %q created.", dbName)
	return 0
}

func prompt(reader *bufio.Reader, label, def string) string {
	if def != "" {
		fmt.Printf("%s [%s]: ", label, def)
	} else {
		fmt.Printf("%s: ", label)
	}
	line, _ := reader.ReadString('\n')
	line = strings.TrimSpace(line)
	if line == "" {
		return def
	}
	return line
}

func databaseExists(env []string, user, host, port, dbName string) (bool, error) {
	check := exec.Command("psql",
		"-U", user, "-h", host, "-p", port,
		"-d", "postgres",
		"-tA", "-c", "SELECT 1 FROM pg_database WHERE datname = '"+strings.ReplaceAll(dbName, "'", "''")+"'",
	)
	check.Env = env
	out, err := check.Output()
	if err != nil {
		return false, err
	}
	return strings.TrimSpace(string(out)) == "1", nil
}

func printManualFallback(dbName string) {
	fmt.Println("\nRun this manually with a superuser connection instead:")
	fmt.Printf("   CREATE DATABASE %q ENCODING 'UTF8';\n", dbName)
}
