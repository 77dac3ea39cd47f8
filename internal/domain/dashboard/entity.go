package dashboard

// Stats is the admin landing-page aggregate, computed for "today" in
// the server's local calendar.
type Stats struct {
	TotalEmployees     int64 `json:"totalEmployees"`
	PresentToday       int64 `json:"presentToday"`
	OnLeaveToday       int64 `json:"onLeaveToday"`
	PendingLeaves      int64 `json:"pendingLeaves"`
	PendingCorrections int64 `json:"pendingCorrections"`
}
