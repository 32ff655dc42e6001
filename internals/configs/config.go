package configs

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

var (
	JWTSecret string
)

// =======================
// ENV LOADER
// =======================
func LoadEnv() {
	if os.Getenv("RAILWAY_ENVIRONMENT") == "" {
		if err := godotenv.Load(); err != nil {
			log.Println("⚠️ Tidak menemukan .env file, menggunakan ENV dari sistem")
		} else {
			log.Println("✅ .env file berhasil dimuat!")
		}
	} else {
		log.Println("🚀 Running in Railway, menggunakan ENV dari sistem")
	}

	JWTSecret = GetEnv("JWT_SECRET")
	if JWTSecret == "" {
		log.Println("❌ JWT_SECRET belum diset!")
	} else {
		log.Println("✅ JWT_SECRET berhasil dimuat.")
	}
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if !exists && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}

func GetEnvInt(key string, defaultValue int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("[WARN] %s bukan angka (%q), pakai default %d", key, v, defaultValue)
		return defaultValue
	}
	return n
}

// =======================
// JUDGE CONFIG
// =======================

// JudgeConfig dibuat eksplisit (bukan global mutable), dioper ke service
// yang membutuhkan. Interval & attempt cap mengikuti perilaku Judge0.
type JudgeConfig struct {
	BaseURL      string
	APIKey       string
	PollInterval time.Duration
	// MaxPollsGrade dipakai saat penilaian penuh; MaxPollsRun untuk test-run.
	MaxPollsGrade int
	MaxPollsRun   int
}

func LoadJudgeConfig() JudgeConfig {
	cfg := JudgeConfig{
		BaseURL:       strings.TrimRight(GetEnv("JUDGE_BASE_URL", "http://localhost:2358"), "/"),
		APIKey:        GetEnv("JUDGE_API_KEY"),
		PollInterval:  time.Duration(GetEnvInt("JUDGE_POLL_INTERVAL_MS", 1000)) * time.Millisecond,
		MaxPollsGrade: GetEnvInt("JUDGE_MAX_POLLS_GRADE", 30),
		MaxPollsRun:   GetEnvInt("JUDGE_MAX_POLLS_RUN", 10),
	}
	if cfg.BaseURL == "" {
		log.Println("❌ JUDGE_BASE_URL belum diset!")
	}
	return cfg
}
