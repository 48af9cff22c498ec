package blackjack

import "fmt"

// ConfigurationError reports invalid table construction arguments.
type ConfigurationError struct {
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("invalid table configuration: %s", e.Reason)
}

func configErrorf(format string, args ...any) *ConfigurationError {
	return &ConfigurationError{Reason: fmt.Sprintf(format, args...)}
}

// InvalidActionError reports an action attempted outside its valid state,
// e.g. hitting a hand that already stood or splitting an ineligible pair.
type InvalidActionError struct {
	Player string
	Action string
	Reason string
}

func (e *InvalidActionError) Error() string {
	return fmt.Sprintf("%s cannot play %s: %s", e.Player, e.Action, e.Reason)
}
