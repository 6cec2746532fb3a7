package config

import (
	"reflect"
	"strings"

	"github.com/renato0307/gitdash/internal/paths"
)

// GetSettingsFilePath returns the path to the settings file
func GetSettingsFilePath() string {
	return paths.GetSettingsPath()
}

// GetSettingsExample uses reflection to generate example settings
// This automatically stays in sync when new fields are added to Settings
func GetSettingsExample() map[string]any {
	var s Settings
	t := reflect.TypeOf(s)
	example := make(map[string]any)

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		jsonTag := field.Tag.Get("json")
		if jsonTag == "" {
			continue
		}

		// Extract the JSON field name (before comma)
		jsonName := strings.Split(jsonTag, ",")[0]

		example[jsonName] = generateExampleValue(field.Type, jsonName)
	}

	return example
}

// generateExampleValue creates appropriate example values based on type and field name
func generateExampleValue(t reflect.Type, fieldName string) any {
	if t.Kind() == reflect.Ptr {
		switch t.Elem().Kind() {
		case reflect.Bool:
			return false
		case reflect.Int:
			switch fieldName {
			case "commit_scan_depth":
				return 300
			case "max_commit_rows":
				return 100
			case "max_log_files":
				return 1000
			case "port":
				return 4173
			default:
				return 0
			}
		}
	}

	if t.Kind() == reflect.String {
		switch fieldName {
		case "asset_dir":
			return "~/src/dashboard/dist"
		case "db_path":
			return "~/.gitdash/tracked.db"
		case "git_bin":
			return "/usr/bin/git"
		case "listen_address":
			return "127.0.0.1"
		case "repo_path":
			return "~/src/project"
		case "tracked_store":
			return TrackedStoreJSON
		default:
			return "example"
		}
	}

	return nil
}
