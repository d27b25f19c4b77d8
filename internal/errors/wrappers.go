package errors

import "fmt"

// FileReadError reports an input file that could not be read
type FileReadError struct {
	*BaseError
	Path string
}

// ParseError reports source text that is not valid C#
type ParseError struct {
	*BaseError
	Path string
}

// RenderError reports a unit model the renderer could not format
type RenderError struct {
	*BaseError
	ClassName string
}

// WriteError reports a generated unit that could not be persisted
type WriteError struct {
	*BaseError
	Path string
}

// ConfigurationError reports an invalid setting
type ConfigurationError struct {
	*BaseError
	Key string
}

// WrapFileReadError wraps a failure to read an input file
func WrapFileReadError(path string, cause error) *FileReadError {
	return &FileReadError{
		BaseError: Wrap(FileReadErrorCode, fmt.Sprintf("failed to read file '%s'", path), cause).
			WithContext("path", path).
			WithSuggestions(
				"Check that the file exists",
				"Ensure you have read permissions for the file",
			),
		Path: path,
	}
}

// WrapParseError wraps a syntax failure in a source or generated file
func WrapParseError(path string, cause error) *ParseError {
	return &ParseError{
		BaseError: Wrap(ParseErrorCode, "failed to parse C# source", cause).
			WithLocation(SourceLocation{File: path}),
		Path: path,
	}
}

// NewParseError creates a parse error at a known position
func NewParseError(path string, line, column int, message string) *ParseError {
	return &ParseError{
		BaseError: New(ParseErrorCode, message).
			WithLocation(SourceLocation{File: path, Line: line, Column: column}).
			WithSuggestion("Fix the syntax error and run the generator again"),
		Path: path,
	}
}

// WrapRenderError wraps a failure to format a unit model
func WrapRenderError(className, templateName string, cause error) *RenderError {
	return &RenderError{
		BaseError: Wrap(RenderErrorCode, fmt.Sprintf("failed to render test class '%s'", className), cause).
			WithContext("template", templateName),
		ClassName: className,
	}
}

// WrapWriteError wraps a failure to write a generated file
func WrapWriteError(path string, cause error) *WriteError {
	return &WriteError{
		BaseError: Wrap(WriteErrorCode, fmt.Sprintf("failed to write file '%s'", path), cause).
			WithContext("path", path).
			WithSuggestion("Ensure the output directory is writable"),
		Path: path,
	}
}

// NewCollisionError reports two units resolving to the same output file
func NewCollisionError(path, className string) *WriteError {
	return &WriteError{
		BaseError: Newf(CollisionErrorCode, "test class '%s' was generated more than once in this run", className).
			WithContext("path", path).
			WithSuggestions(
				"Rename one of the source classes",
				"Use --on-collision=overwrite to keep the last generated file",
			),
		Path: path,
	}
}

// WrapDirectoryError wraps a failure to create the output directory
func WrapDirectoryError(path string, cause error) *WriteError {
	return &WriteError{
		BaseError: Wrap(WriteErrorCode, fmt.Sprintf("failed to create output directory '%s'", path), cause).
			WithContext("path", path),
		Path: path,
	}
}

// NewConfigurationError reports an invalid configuration value
func NewConfigurationError(key string, value interface{}, reason string) *ConfigurationError {
	return &ConfigurationError{
		BaseError: Newf(ConfigurationErrorCode, "invalid configuration '%s' (%v): %s", key, value, reason).
			WithContext("key", key).
			WithContext("value", value),
		Key: key,
	}
}

// WrapConfigurationError wraps configuration loading errors
func WrapConfigurationError(source, operation string, cause error) *ConfigurationError {
	message := fmt.Sprintf("failed to %s configuration '%s'", operation, source)
	return &ConfigurationError{
		BaseError: Wrap(ConfigurationErrorCode, message, cause).
			WithContext("source", source).
			WithContext("operation", operation),
	}
}
