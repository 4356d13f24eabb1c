package get_booked_times

// BookedTimesResponse HTTP response model
// bookedTimes - времена "HH:MM", уже занятые на дату, по возрастанию
type BookedTimesResponse struct {
	Success     bool     `json:"success"`
	Date        string   `json:"date"`
	BookedTimes []string `json:"bookedTimes"`
}
