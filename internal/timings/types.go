package timings

// response is the subset of the Al Adhan /timings payload the client reads.
type response struct {
	Code   int    `json:"code"`
	Status string `json:"status"`
	Data   data   `json:"data"`
}

type data struct {
	Timings providerTimings `json:"timings"`
	Date    dateInfo        `json:"date"`
	Meta    meta            `json:"meta"`
}

// providerTimings values are "HH:MM", sometimes with a " (TZ)" suffix.
type providerTimings struct {
	Fajr    string `json:"Fajr"`
	Sunrise string `json:"Sunrise"`
	Dhuhr   string `json:"Dhuhr"`
	Asr     string `json:"Asr"`
	Maghrib string `json:"Maghrib"`
	Isha    string `json:"Isha"`
}

type dateInfo struct {
	Readable string    `json:"readable"`
	Hijri    hijriDate `json:"hijri"`
}

type hijriDate struct {
	Day   string `json:"day"`
	Month struct {
		En string `json:"en"`
	} `json:"month"`
	Year string `json:"year"`
}

func (h hijriDate) format() string {
	if h.Day == "" || h.Month.En == "" || h.Year == "" {
		return ""
	}
	return h.Day + " " + h.Month.En + " " + h.Year + " AH"
}

type meta struct {
	Timezone string `json:"timezone"`
	Method   struct {
		ID   int    `json:"id"`
		Name string `json:"name"`
	} `json:"method"`
}

func (t providerTimings) byName(name string) string {
	switch name {
	case "Fajr":
		return t.Fajr
	case "Dhuhr":
		return t.Dhuhr
	case "Asr":
		return t.Asr
	case "Maghrib":
		return t.Maghrib
	case "Isha":
		return t.Isha
	}
	return ""
}
