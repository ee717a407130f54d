package model

import "fmt"

type StudentPreferences struct {
	// Preference weights (1-10, 10 is the highest priority)
	NoMorningWeight          int `validate:"min=1,max=10" mapstructure:"noMorningWeight"`
	FreeDaysWeight           int `validate:"min=1,max=10" mapstructure:"freeDaysWeight"`
	EarlyDismissalWeight     int `validate:"min=1,max=10" mapstructure:"earlyDismissalWeight"`
	ConsecutiveClassesWeight int `validate:"min=1,max=10" mapstructure:"consecutiveClassesWeight"`
	LongBreaksWeight         int `validate:"min=1,max=10" mapstructure:"longBreaksWeight"`

	PreferredEarliestTime int `validate:"min=0,max=1440" mapstructure:"preferredEarliestTime"` // Minutes from midnight
	PreferredLatestTime   int `validate:"min=0,max=1440" mapstructure:"preferredLatestTime"`   // Minutes from midnight
	MinimumBreakTime      int `validate:"min=0" mapstructure:"minimumBreakTime"`
	PreferredBreakTime    int `validate:"min=0" mapstructure:"preferredBreakTime"`
	MaxClassesPerDay      int `validate:"min=0" mapstructure:"maxClassesPerDay"`
}

func DefaultPreferences() StudentPreferences {
	return StudentPreferences{
		NoMorningWeight:          8,
		FreeDaysWeight:           10,
		EarlyDismissalWeight:     5,
		ConsecutiveClassesWeight: 7,
		LongBreaksWeight:         3,
		PreferredEarliestTime:    10 * 60,
		PreferredLatestTime:      16 * 60,
		MinimumBreakTime:         30,
		PreferredBreakTime:       60,
		MaxClassesPerDay:         3,
	}
}

func (preferences StudentPreferences) Validate() error {
	if err := validate.Struct(preferences); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidPreferences, err)
	}
	return nil
}
