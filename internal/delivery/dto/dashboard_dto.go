package dto

// DashboardResponse aggregates counters for the doctor's landing view.
type DashboardResponse struct {
	TotalPatients        int64 `json:"total_patients"`
	UpcomingAppointments int64 `json:"upcoming_appointments"`
	CompletedToday       int64 `json:"completed_today"`
}
