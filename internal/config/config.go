// Package config loads product policy settings from an optional YAML file
// with environment-variable overrides. Everything has a working default so
// the binary runs with no config at all.
package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/slidecraft/slidecraft/internal/gemini"
	"github.com/slidecraft/slidecraft/internal/outline"
)

type Config struct {
	// Port the serve command listens on.
	Port string `yaml:"port"`
	// TextModel generates slide outlines.
	TextModel string `yaml:"text_model"`
	// ImageModel renders slide images.
	ImageModel string `yaml:"image_model"`
	// ArticleThreshold is the free-text length above which input is treated
	// as pasted material instead of a topic to research.
	ArticleThreshold int `yaml:"article_threshold"`
	// MaxArticleChars caps verbatim source material per request.
	MaxArticleChars int `yaml:"max_article_chars"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Port:             "8888",
		TextModel:        gemini.DefaultTextModel,
		ImageModel:       gemini.DefaultImageModel,
		ArticleThreshold: outline.DefaultArticleThreshold,
		MaxArticleChars:  outline.DefaultMaxArticleChars,
	}
}

// Load reads the YAML file at path (skipped when path is empty or the file
// does not exist) and applies SLIDECRAFT_* environment overrides on top of
// the defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
			// Optional file; fall through to env overrides.
		case err != nil:
			return cfg, fmt.Errorf("failed to read config file: %w", err)
		default:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return cfg, fmt.Errorf("failed to parse config file %s: %w", path, err)
			}
		}
	}

	if v := os.Getenv("SLIDECRAFT_PORT"); v != "" {
		cfg.Port = v
	}
	if v := os.Getenv("SLIDECRAFT_TEXT_MODEL"); v != "" {
		cfg.TextModel = v
	}
	if v := os.Getenv("SLIDECRAFT_IMAGE_MODEL"); v != "" {
		cfg.ImageModel = v
	}
	if v := os.Getenv("SLIDECRAFT_ARTICLE_THRESHOLD"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return cfg, fmt.Errorf("invalid SLIDECRAFT_ARTICLE_THRESHOLD %q", v)
		}
		cfg.ArticleThreshold = n
	}
	if v := os.Getenv("SLIDECRAFT_MAX_ARTICLE_CHARS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return cfg, fmt.Errorf("invalid SLIDECRAFT_MAX_ARTICLE_CHARS %q", v)
		}
		cfg.MaxArticleChars = n
	}

	return cfg, nil
}
