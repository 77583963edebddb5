// Package fixtures holds seed data applied by the bulk roster setup.
package fixtures

// DefaultPassword is assigned to every seeded roster account and used as
// the fallback when a manager resets a password without supplying one.
const DefaultPassword = "123456"

type RosterEntry struct {
	Name     string
	Username string
}

// Roster is the staff list seeded by the bulk setup endpoint. Accounts
// whose username already exists are skipped.
var Roster = []RosterEntry{
	{Name: "A.NĂM", Username: "anam"},
	{Name: "TIẾN", Username: "tien"},
	{Name: "HIỆP", Username: "hiep"},
	{Name: "CHƯƠNG", Username: "chuong"},
	{Name: "PHƯỚC", Username: "phuoc"},
	{Name: "GIANG", Username: "giang"},
	{Name: "HÒA", Username: "hoa"},
	{Name: "DUY", Username: "duy"},
	{Name: "THƯƠNG", Username: "thuong"},
	{Name: "ANH THÁI", Username: "anhthai"},
	{Name: "C.HƯỜNG", Username: "chuongc"},
	{Name: "TÚ", Username: "tu"},
	{Name: "LUẬT", Username: "luat"},
	{Name: "C.NHIỄM", Username: "cnhiem"},
	{Name: "VY", Username: "vy"},
	{Name: "THẾ ANH", Username: "theanh"},
	{Name: "HẬU", Username: "hau"},
}
