package wire

// StartRequest opens a broadcast room before any fragment is sent.
type StartRequest struct {
	Title string `json:"title"`
	Cols  int    `json:"cols,omitempty"`
	Rows  int    `json:"rows,omitempty"`
}

// StartResult is the data member of a successful start response.
type StartResult struct {
	RoomID   string `json:"roomId"`
	WatchURL string `json:"watchUrl"`
}
