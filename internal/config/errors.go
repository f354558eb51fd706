package config

import "github.com/srmtimer/srm/internal/apperr"

var (
	errConfigOption = &apperr.Error{
		Message: "config option error",
	}

	errConfigValidation = &apperr.Error{
		Message: "config validation error",
	}

	errReadConfig = &apperr.Error{
		Message: "reading config file failed",
	}

	errWriteConfig = &apperr.Error{
		Message: "writing default config failed",
	}

	errPrompt = &apperr.Error{
		Message: "user prompt failed",
	}

	errUnknownLanguage = &apperr.Error{
		Message: "unknown language: %s",
	}

	errInvalidDivision = &apperr.Error{
		Message: "division must be 1 or 2, got %d",
	}

	errInvalidColor = &apperr.Error{
		Message: "display color must be a valid hex color code (e.g. #FF0000), got %s",
	}

	errInvalidTipInterval = &apperr.Error{
		Message: "tip interval must be between %v and %v",
	}

	errUnknownOutput = &apperr.Error{
		Message: "unknown output format: %s (must be table or json)",
	}
)
