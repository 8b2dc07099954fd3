package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/fwojciec/convo"
	convojson "github.com/fwojciec/convo/json"
	convoyaml "github.com/fwojciec/convo/yaml"
)

// loadConversation returns the conversation at path, or the built-in
// sample when path is empty.
func loadConversation(path string, minimal bool) (convo.Conversation, error) {
	if path == "" {
		if minimal {
			return convo.MinimalConversation(), nil
		}
		return convo.SampleConversation(), nil
	}

	var (
		conv convo.Conversation
		err  error
	)
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		conv, err = convojson.Load(path)
	case ".yaml", ".yml":
		conv, err = convoyaml.Load(path)
	default:
		return nil, fmt.Errorf("%w: %q", convo.ErrUnsupportedFormat, ext)
	}
	if err != nil {
		return nil, fmt.Errorf("load conversation: %w", err)
	}
	return conv, nil
}
