package datepart

import "strconv"

var romanMonths = map[string]string{
	"01": "i",
	"02": "ii",
	"03": "iii",
	"04": "iv",
	"05": "v",
	"06": "vi",
	"07": "vii",
	"08": "viii",
	"09": "ix",
	"10": "x",
	"11": "xi",
	"12": "xii",
}

//RomanMonth returns the lowercase Roman numeral for a two digit month.
func RomanMonth(month string) (string, bool) {
	r, ok := romanMonths[month]
	return r, ok
}

//monthNumber returns the month number of a two digit or Roman numeral month and 0 if there is none.
func monthNumber(month string) int {
	for digits, r := range romanMonths {
		if month == digits || month == r {
			n, _ := strconv.Atoi(digits)
			return n
		}
	}
	return 0
}
