package panchanga

import "fmt"

// Lookup tables. Position in each table is the bucket index an angle maps
// to, so order must not change.

// rashis are the 12 zodiac signs, 30° each.
var rashis = [12]string{
	"Mesha",
	"Vrishabha",
	"Mithuna",
	"Karka",
	"Simha",
	"Kanya",
	"Tula",
	"Vrischika",
	"Dhanu",
	"Makara",
	"Kumbha",
	"Meena",
}

// tithis are the 30 lunar days, 12° of Moon-Sun separation each. The first
// 15 fall in Shukla paksha, the last 15 in Krishna paksha.
var tithis = [30]string{
	"Prathame",
	"Dwithiya",
	"Thrithiya",
	"Chathurthi",
	"Panchami",
	"Shrashti",
	"Saptami",
	"Ashtami",
	"Navami",
	"Dashami",
	"Ekadashi",
	"Dwadashi",
	"Thrayodashi",
	"Chaturdashi",
	"Poornima",
	"Prathame",
	"Dwithiya",
	"Thrithiya",
	"Chathurthi",
	"Panchami",
	"Shrashti",
	"Saptami",
	"Ashtami",
	"Navami",
	"Dashami",
	"Ekadashi",
	"Dwadashi",
	"Thrayodashi",
	"Chaturdashi",
	"Amavasya",
}

// karanas are the 11 half-tithis. The first 7 repeat through the month;
// the last 4 occur once.
var karanas = [11]string{
	"Bava",
	"Balava",
	"Kaulava",
	"Taitula",
	"Garija",
	"Vanija",
	"Visti",
	"Sakuni",
	"Chatuspada",
	"Naga",
	"Kimstughna",
}

// yogas are the 27 luni-solar combinations, 13°20' of summed longitude each.
var yogas = [27]string{
	"Vishkambha",
	"Prithi",
	"Ayushman",
	"Saubhagya",
	"Shobhana",
	"Atiganda",
	"Sukarman",
	"Dhrithi",
	"Shoola",
	"Ganda",
	"Vridhi",
	"Dhruva",
	"Vyaghata",
	"Harshana",
	"Vajra",
	"Siddhi",
	"Vyatipata",
	"Variyan",
	"Parigha",
	"Shiva",
	"Siddha",
	"Sadhya",
	"Shubha",
	"Shukla",
	"Bramha",
	"Indra",
	"Vaidhruthi",
}

// nakshatras are the 27 lunar mansions, 13°20' of sidereal longitude each.
var nakshatras = [27]string{
	"Ashwini",
	"Bharani",
	"Krittika",
	"Rohini",
	"Mrigashira",
	"Ardhra",
	"Punarvasu",
	"Pushya",
	"Ashlesa",
	"Magha",
	"Poorva Phalguni",
	"Uttara Phalguni",
	"Hasta",
	"Chitra",
	"Swathi",
	"Vishaka",
	"Anuradha",
	"Jyeshta",
	"Mula",
	"Poorva Ashada",
	"Uttara Ashada",
	"Sravana",
	"Dhanishta",
	"Shatabisha",
	"Poorva Bhadra",
	"Uttara Bhadra",
	"Revathi",
}

// Paksha names.
const (
	PakshaShukla  = "Shukla"
	PakshaKrishna = "Krishna"
)

// Element identifies one of the lookup tables.
type Element int

const (
	ElementTithi Element = iota
	ElementNakshatra
	ElementYoga
	ElementKarana
	ElementRashi
)

// Elements lists every Element in report order.
func Elements() []Element {
	return []Element{ElementTithi, ElementNakshatra, ElementYoga, ElementKarana, ElementRashi}
}

func (e Element) String() string {
	switch e {
	case ElementTithi:
		return "tithi"
	case ElementNakshatra:
		return "nakshatra"
	case ElementYoga:
		return "yoga"
	case ElementKarana:
		return "karana"
	case ElementRashi:
		return "rashi"
	}
	return fmt.Sprintf("Element(%d)", int(e))
}

func (e Element) table() []string {
	switch e {
	case ElementTithi:
		return tithis[:]
	case ElementNakshatra:
		return nakshatras[:]
	case ElementYoga:
		return yogas[:]
	case ElementKarana:
		return karanas[:]
	case ElementRashi:
		return rashis[:]
	}
	return nil
}

// Size returns the number of entries in e's table, or 0 for an unknown
// Element.
func (e Element) Size() int {
	return len(e.table())
}

// Name returns entry idx of e's table.
func (e Element) Name(idx int) (string, error) {
	return lookup(e.String(), e.table(), idx)
}

// Reachable reports which entries of e's table some angle can select.
// Every entry is reachable except karanas 7-9, which FoldKarana never
// produces.
func (e Element) Reachable() []bool {
	reachable := make([]bool, e.Size())
	if e != ElementKarana {
		for i := range reachable {
			reachable[i] = true
		}
		return reachable
	}
	for raw := 0; raw < karanaBuckets; raw++ {
		reachable[FoldKarana(raw)] = true
	}
	return reachable
}

// Of returns the index idx holds for e, or -1 for an unknown Element.
func (idx Indices) Of(e Element) int {
	switch e {
	case ElementTithi:
		return idx.Tithi
	case ElementNakshatra:
		return idx.Nakshatra
	case ElementYoga:
		return idx.Yoga
	case ElementKarana:
		return idx.Karana
	case ElementRashi:
		return idx.Rashi
	}
	return -1
}

// lookup returns table[idx], or an IndexOutOfRange error naming op.
func lookup(op string, table []string, idx int) (string, error) {
	if idx < 0 || idx >= len(table) {
		return "", newError(op, ErrIndexOutOfRange, "index %d outside [0, %d)", idx, len(table))
	}
	return table[idx], nil
}
