package metadata

// Video holds the metadata fields returned to API callers
type Video struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Channel     string `json:"channel"`
}

// videoListResponse mirrors the YouTube Data API v3 videos.list response
type videoListResponse struct {
	Items []videoItem `json:"items"`
}

type videoItem struct {
	ID      string  `json:"id"`
	Snippet snippet `json:"snippet"`
}

type snippet struct {
	Title        string `json:"title"`
	Description  string `json:"description"`
	ChannelTitle string `json:"channelTitle"`
}

// apiErrorResponse mirrors the error envelope the API returns on non-200s
type apiErrorResponse struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}
