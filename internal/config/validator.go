package config

import (
	"fmt"
	"net/url"
	"slices"
	"strings"
)

// ValidationError represents a single validation failure
type ValidationError struct {
	Field   string // The config field path (e.g., "poll.list_interval_ms")
	Value   any    // The invalid value
	Message string // Human-readable error description
}

// Error implements the error interface for ValidationError
func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s (got: %v)", e.Field, e.Message, e.Value)
}

// ValidationErrors is a collection of validation errors
type ValidationErrors []ValidationError

// Error implements the error interface for ValidationErrors
func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	if len(e) == 1 {
		return e[0].Error()
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%d validation errors:\n", len(e)))
	for i, err := range e {
		sb.WriteString(fmt.Sprintf("  %d. %s\n", i+1, err.Error()))
	}
	return sb.String()
}

// ValidLogLevels returns the list of valid log levels
func ValidLogLevels() []string {
	return []string{"debug", "info", "warn", "error"}
}

// Validate checks the Config for invalid values and returns all validation errors found
func (c *Config) Validate() []ValidationError {
	var errors []ValidationError

	errors = append(errors, c.validateServer()...)
	errors = append(errors, c.validatePoll()...)
	errors = append(errors, c.validateTUI()...)
	errors = append(errors, c.validateLogging()...)

	return errors
}

// validateServer validates the ServerConfig
func (c *Config) validateServer() []ValidationError {
	var errors []ValidationError

	if c.Server.BaseURL == "" {
		errors = append(errors, ValidationError{
			Field:   "server.base_url",
			Value:   c.Server.BaseURL,
			Message: "must not be empty",
		})
	} else {
		u, err := url.Parse(c.Server.BaseURL)
		if err != nil || u.Scheme == "" || u.Host == "" {
			errors = append(errors, ValidationError{
				Field:   "server.base_url",
				Value:   c.Server.BaseURL,
				Message: "must be a valid URL with scheme and host",
			})
		} else if u.Scheme != "http" && u.Scheme != "https" {
			errors = append(errors, ValidationError{
				Field:   "server.base_url",
				Value:   c.Server.BaseURL,
				Message: "scheme must be http or https",
			})
		}
	}

	if c.Server.TimeoutSeconds < 0 {
		errors = append(errors, ValidationError{
			Field:   "server.timeout_seconds",
			Value:   c.Server.TimeoutSeconds,
			Message: "must be non-negative (0 disables the timeout)",
		})
	}

	const maxTimeoutSeconds = 600
	if c.Server.TimeoutSeconds > maxTimeoutSeconds {
		errors = append(errors, ValidationError{
			Field:   "server.timeout_seconds",
			Value:   c.Server.TimeoutSeconds,
			Message: fmt.Sprintf("exceeds maximum of %d seconds", maxTimeoutSeconds),
		})
	}

	return errors
}

// validatePoll validates the PollConfig
func (c *Config) validatePoll() []ValidationError {
	var errors []ValidationError

	// Intervals below 100ms would hammer the service
	const minIntervalMs = 100
	const maxIntervalMs = 300000 // 5 minutes

	if c.Poll.ListIntervalMs < minIntervalMs {
		errors = append(errors, ValidationError{
			Field:   "poll.list_interval_ms",
			Value:   c.Poll.ListIntervalMs,
			Message: fmt.Sprintf("must be at least %dms", minIntervalMs),
		})
	}
	if c.Poll.ListIntervalMs > maxIntervalMs {
		errors = append(errors, ValidationError{
			Field:   "poll.list_interval_ms",
			Value:   c.Poll.ListIntervalMs,
			Message: fmt.Sprintf("exceeds maximum of %dms", maxIntervalMs),
		})
	}

	if c.Poll.TailIntervalMs < minIntervalMs {
		errors = append(errors, ValidationError{
			Field:   "poll.tail_interval_ms",
			Value:   c.Poll.TailIntervalMs,
			Message: fmt.Sprintf("must be at least %dms", minIntervalMs),
		})
	}
	if c.Poll.TailIntervalMs > maxIntervalMs {
		errors = append(errors, ValidationError{
			Field:   "poll.tail_interval_ms",
			Value:   c.Poll.TailIntervalMs,
			Message: fmt.Sprintf("exceeds maximum of %dms", maxIntervalMs),
		})
	}

	return errors
}

// validateTUI validates the TUIConfig
func (c *Config) validateTUI() []ValidationError {
	var errors []ValidationError

	if c.TUI.MaxLogLines < 0 {
		errors = append(errors, ValidationError{
			Field:   "tui.max_log_lines",
			Value:   c.TUI.MaxLogLines,
			Message: "must be non-negative",
		})
	}

	// Reasonable upper bound to prevent memory issues
	const maxLogLinesLimit = 100000
	if c.TUI.MaxLogLines > maxLogLinesLimit {
		errors = append(errors, ValidationError{
			Field:   "tui.max_log_lines",
			Value:   c.TUI.MaxLogLines,
			Message: fmt.Sprintf("exceeds maximum of %d", maxLogLinesLimit),
		})
	}

	// Sidebar width validation (0 means use default, which is valid).
	// These values must match tui.SidebarMinWidth and tui.SidebarMaxWidth
	// (defined separately to avoid circular import).
	const minSidebarWidth = 20
	const maxSidebarWidth = 60
	if c.TUI.SidebarWidth != 0 {
		if c.TUI.SidebarWidth < minSidebarWidth {
			errors = append(errors, ValidationError{
				Field:   "tui.sidebar_width",
				Value:   c.TUI.SidebarWidth,
				Message: fmt.Sprintf("must be at least %d columns", minSidebarWidth),
			})
		}
		if c.TUI.SidebarWidth > maxSidebarWidth {
			errors = append(errors, ValidationError{
				Field:   "tui.sidebar_width",
				Value:   c.TUI.SidebarWidth,
				Message: fmt.Sprintf("exceeds maximum of %d columns", maxSidebarWidth),
			})
		}
	}

	return errors
}

// validateLogging validates the LoggingConfig
func (c *Config) validateLogging() []ValidationError {
	var errors []ValidationError

	if c.Logging.Level != "" && !slices.Contains(ValidLogLevels(), strings.ToLower(c.Logging.Level)) {
		errors = append(errors, ValidationError{
			Field:   "logging.level",
			Value:   c.Logging.Level,
			Message: fmt.Sprintf("must be one of: %s", strings.Join(ValidLogLevels(), ", ")),
		})
	}

	if c.Logging.MaxSizeMB < 0 {
		errors = append(errors, ValidationError{
			Field:   "logging.max_size_mb",
			Value:   c.Logging.MaxSizeMB,
			Message: "must be non-negative (0 disables rotation)",
		})
	}

	if c.Logging.MaxBackups < 0 {
		errors = append(errors, ValidationError{
			Field:   "logging.max_backups",
			Value:   c.Logging.MaxBackups,
			Message: "must be non-negative",
		})
	}

	const maxBackupsLimit = 100
	if c.Logging.MaxBackups > maxBackupsLimit {
		errors = append(errors, ValidationError{
			Field:   "logging.max_backups",
			Value:   c.Logging.MaxBackups,
			Message: fmt.Sprintf("exceeds maximum of %d", maxBackupsLimit),
		})
	}

	return errors
}
