package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDSN_EncodesSpecialCharacters(t *testing.T) {
	cfg := DBConfig{
		Host:     "localhost",
		Port:     5432,
		User:     "postgres",
		Password: "p@ss:w/rd",
		DBName:   "kho_duong",
		SSLMode:  "disable",
	}

	dsn := cfg.DSN()
	assert.Contains(t, dsn, "postgres://postgres:")
	assert.Contains(t, dsn, "@localhost:5432/kho_duong")
	assert.Contains(t, dsn, "sslmode=disable")
	assert.NotContains(t, dsn, "p@ss:w/rd", "raw password must be URL-encoded")
}

func TestConnectionString_DatabaseURLWins(t *testing.T) {
	cfg := DBConfig{
		DatabaseURL: "postgresql://u:p@db.example.com:5432/kho?sslmode=require",
		Host:        "ignored",
		Port:        1,
	}
	assert.Equal(t, cfg.DatabaseURL, cfg.ConnectionString())

	cfg.DatabaseURL = ""
	assert.Equal(t, cfg.DSN(), cfg.ConnectionString())
}

func TestSplitLanguages(t *testing.T) {
	cases := []struct {
		in   string
		want []string
	}{
		{"vie+eng", []string{"vie", "eng"}},
		{"vie,eng", []string{"vie", "eng"}},
		{" vie + eng ", []string{"vie", "eng"}},
		{"vie", []string{"vie"}},
		{"", []string{}},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, splitLanguages(tc.in), "input %q", tc.in)
	}
}
