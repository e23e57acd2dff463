package captions

// TrackInfo describes an available caption track before fetching it
type TrackInfo struct {
	Language string
	Name     string
	Default  bool
}

// Entry is a single timed caption line
type Entry struct {
	Start float64 // seconds from the start of the video
	Text  string
}

// Track is a fetched caption track; immutable once returned
type Track struct {
	Language string
	Entries  []Entry
}

// trackList mirrors the provider's XML track listing
type trackList struct {
	Tracks []trackElem `xml:"track"`
}

type trackElem struct {
	ID          string `xml:"id,attr"`
	Name        string `xml:"name,attr"`
	LangCode    string `xml:"lang_code,attr"`
	LangDefault bool   `xml:"lang_default,attr"`
}

// timedText mirrors the provider's json3 transcript payload
type timedText struct {
	Events []timedTextEvent `json:"events"`
}

type timedTextEvent struct {
	StartMs    int64          `json:"tStartMs"`
	DurationMs int64          `json:"dDurationMs"`
	Segs       []timedTextSeg `json:"segs"`
}

type timedTextSeg struct {
	UTF8 string `json:"utf8"`
}
