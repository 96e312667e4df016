package main

import (
	"os"
	"strings"

	"github.com/sirupsen/logrus"

	"logistics-guide/backend/internal/api"
	"logistics-guide/backend/internal/scoring"
)

func main() {
	configureLogging()

	presetName := strings.TrimSpace(os.Getenv("WEIGHTS_PRESET"))
	if presetName == "" {
		presetName = scoring.PresetDefault
	}
	weights, err := scoring.Preset(presetName)
	if err != nil {
		logrus.Fatalf("weights preset: %v", err)
	}

	var notice string
	if path := strings.TrimSpace(os.Getenv("WEIGHTS_FILE")); path != "" {
		weights, notice, err = scoring.LoadWeightsFile(path)
		if err != nil {
			logrus.Fatalf("load weights file: %v", err)
		}
		presetName = "file:" + path
	}

	cfg := api.Config{
		AllowedOrigins: parseOrigins(os.Getenv("ALLOWED_ORIGINS")),
		Weights:        weights,
		WeightsPreset:  presetName,
		WeightsNotice:  notice,
	}

	server, err := api.NewServer(cfg)
	if err != nil {
		logrus.Fatalf("create server: %v", err)
	}

	router, err := server.Router()
	if err != nil {
		logrus.Fatalf("configure router: %v", err)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "2000"
	}

	logrus.Infof("starting logistics guide on :%s", port)
	if err := router.Run(":" + port); err != nil {
		logrus.Fatalf("server exited: %v", err)
	}
}

func configureLogging() {
	if strings.EqualFold(strings.TrimSpace(os.Getenv("LOG_FORMAT")), "json") {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}
	if level := strings.TrimSpace(os.Getenv("LOG_LEVEL")); level != "" {
		if parsed, err := logrus.ParseLevel(level); err == nil {
			logrus.SetLevel(parsed)
		} else {
			logrus.WithError(err).Warn("ignoring LOG_LEVEL")
		}
	}
}

func parseOrigins(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
