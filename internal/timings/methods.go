package timings

import "sort"

// Method is one calculation method the provider understands.
type Method struct {
	ID   int
	Name string
}

var methods = map[int]string{
	0:  "Jafari / Shia Ithna-Ashari",
	1:  "University of Islamic Sciences, Karachi",
	2:  "Islamic Society of North America",
	3:  "Muslim World League",
	4:  "Umm Al-Qura University, Makkah",
	5:  "Egyptian General Authority of Survey",
	7:  "Institute of Geophysics, University of Tehran",
	8:  "Gulf Region",
	9:  "Kuwait",
	10: "Qatar",
	11: "Majlis Ugama Islam Singapura, Singapore",
	12: "Union Organization islamic de France",
	13: "Diyanet İşleri Başkanlığı, Turkey",
	14: "Spiritual Administration of Muslims of Russia",
	15: "Moonsighting Committee Worldwide",
	16: "Dubai (experimental)",
	17: "Jabatan Kemajuan Islam Malaysia (JAKIM)",
	18: "Tunisia",
	19: "Algeria",
	20: "KEMENAG - Kementerian Agama Republik Indonesia",
	21: "Morocco",
	22: "Comunidade Islamica de Lisboa",
	23: "Ministry of Awqaf, Islamic Affairs and Holy Places, Jordan",
}

// Methods returns the catalogue ordered by id.
func Methods() []Method {
	out := make([]Method, 0, len(methods))
	for id, name := range methods {
		out = append(out, Method{ID: id, Name: name})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// MethodName returns the name for id, or false if it is unknown.
func MethodName(id int) (string, bool) {
	name, ok := methods[id]
	return name, ok
}
