package domain

// ImportSet is a batch of rows ready to be stored for one user.
type ImportSet struct {
	Sleep    []SleepNightModel
	Activity []ActivityDayModel
	Stress   []StressDayModel
}

// ImportResponse reports how many rows an import stored.
// @Description Row counts written by a record import.
type ImportResponse struct {
	SleepNights  int `json:"sleep_nights" example:"30"`
	ActivityDays int `json:"activity_days" example:"30"`
	StressDays   int `json:"stress_days" example:"30"`
	FeedbackDays int `json:"feedback_days" example:"12"`
}
