package messages

import "errors"

var (
	// Parsing
	ErrJSONParsingCancelled = errors.New("json parsing cancelled")
	ErrFailedToParseJSON    = errors.New("failed to parse JSON content")
	ErrYAMLParsingCancelled = errors.New("yaml parsing cancelled")
	ErrFailedToParseYAML    = errors.New("failed to parse YAML content")

	// Loading
	ErrNilAdapter           = errors.New("adapter is nil")
	ErrLoadingFileCancelled = errors.New("loading message file cancelled")
	ErrFailedToReadFile     = errors.New("failed to read message file")
	ErrFailedToParseFile    = errors.New("failed to parse message file")
	ErrFailedToReadDir      = errors.New("failed to read message directory")
	ErrEmptyLanguage        = errors.New("empty language code")
	ErrInvalidLanguage      = errors.New("invalid language code")

	// Configuration
	ErrFailedToLoadConfig = errors.New("failed to load messages configuration")
)
