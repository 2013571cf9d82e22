package main

import (
	"log/slog"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

func TestSetDefaults_OnlyLoggingKeys(t *testing.T) {
	viper.Reset()
	t.Cleanup(func() {
		viper.Reset()
		setDefaults()
	})

	setDefaults()

	assert.Equal(t, "dev", viper.GetString("server.env"))
	assert.Equal(t, "info", viper.GetString("log.level"))

	// Every other key has exactly one home in config.Load; a second copy
	// here could drift from it.
	assert.Nil(t, viper.Get("server.port"))
	assert.Nil(t, viper.Get("admin.username"))
	assert.Nil(t, viper.Get("auth.secret"))
	assert.Nil(t, viper.Get("storage.data_dir"))
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  slog.Level
	}{
		{input: "debug", want: slog.LevelDebug},
		{input: "info", want: slog.LevelInfo},
		{input: "WARN", want: slog.LevelWarn},
		{input: "warning", want: slog.LevelWarn},
		{input: " error ", want: slog.LevelError},
		{input: "bogus", want: slog.LevelInfo},
		{input: "", want: slog.LevelInfo},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, parseLevel(tt.input), "input %q", tt.input)
	}
}
