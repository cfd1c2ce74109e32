package config

import (
	"os"
	"strconv"
	"strings"
)

type Config struct {
	HTTPAddr  string
	PublicURL string

	DBDriver string
	DBDSN    string

	// Optional YAML override for the question classification table.
	ClassifierTablePath string

	MaxTiebreakRounds int

	AuthSecret string

	CounselorUser     string
	CounselorPassHash string // bcrypt
	StudentUser       string
	StudentPassHash   string // bcrypt

	CORSOrigins []string
}

func FromEnv() Config {
	addr := os.Getenv("HTTP_ADDR")
	if addr == "" {
		addr = ":8080"
	}
	return Config{
		HTTPAddr:            addr,
		PublicURL:           os.Getenv("PUBLIC_URL"),
		DBDriver:            envOr("DB_DRIVER", "sqlite"),
		DBDSN:               envOr("DB_DSN", ""),
		ClassifierTablePath: os.Getenv("CLASSIFIER_TABLE_PATH"),
		MaxTiebreakRounds:   envInt("MAX_TIEBREAK_ROUNDS", 3),
		AuthSecret:          envOr("AUTH_HMAC_SECRET", "supersecret-dev-key"),
		CounselorUser:       envOr("COUNSELOR_USER", "counselor"),
		CounselorPassHash:   envOr("COUNSELOR_PASS_HASH", "$2y$12$pyZAiWaTfVtM7UElIRStvOC3gNbnp70nmQU4eYopLGBfCJr1DOvji"),
		StudentUser:         envOr("STUDENT_USER", "student"),
		StudentPassHash:     envOr("STUDENT_PASS_HASH", "$2y$12$pyZAiWaTfVtM7UElIRStvOC3gNbnp70nmQU4eYopLGBfCJr1DOvji"),
		CORSOrigins:         csvOr("CORS_ORIGINS", "http://localhost:3000"),
	}
}

func envOr(k, def string) string {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	return v
}

func envInt(k string, def int) int {
	if v := os.Getenv(k); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return def
}

func csvOr(k, def string) []string {
	v := envOr(k, def)
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			out = append(out, s)
		}
	}
	return out
}
