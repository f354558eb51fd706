package timer

import "github.com/srmtimer/srm/internal/apperr"

var (
	errParseSessionCmd = &apperr.Error{
		Message: "unable to parse settings.cmd option",
	}

	errRunSessionCmd = &apperr.Error{
		Message: "session command failed",
	}

	errNotify = &apperr.Error{
		Message: "unable to display notification",
	}
)
