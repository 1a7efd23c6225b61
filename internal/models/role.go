package models

import "strings"

// Role 定義用戶角色的類型
// 角色是一個封閉的集合：老師、學長，以及 15 個理事會職位。
// 理事會職位在儲存格式上統一使用 council_ 前綴。
type Role string

const (
	RoleTeacher Role = "teacher" // 老師角色
	RolePrefect Role = "prefect" // 學長角色

	// 理事會職位
	RoleCouncilKetua                  Role = "council_ketua"
	RoleCouncilTimbalanI              Role = "council_timbalan_i"
	RoleCouncilTimbalanII             Role = "council_timbalan_ii"
	RoleCouncilSetiausahaKehormatI    Role = "council_setiausaha_kehormat_i"
	RoleCouncilSetiausahaKehormatII   Role = "council_setiausaha_kehormat_ii"
	RoleCouncilBendahariKehormatI     Role = "council_bendahari_kehormat_i"
	RoleCouncilBendahariKehormatII    Role = "council_bendahari_kehormat_ii"
	RoleCouncilKonsulDisiplinI        Role = "council_konsul_disiplin_i"
	RoleCouncilKonsulDisiplinII       Role = "council_konsul_disiplin_ii"
	RoleCouncilKeselamatanI           Role = "council_keselamatan_i"
	RoleCouncilKeselamatanII          Role = "council_keselamatan_ii"
	RoleCouncilPeneranganKerohanianI  Role = "council_penerangan_kerohanian_i"
	RoleCouncilPeneranganKerohanianII Role = "council_penerangan_kerohanian_ii"
	RoleCouncilPendidikanKeceriaanI   Role = "council_pendidikan_keceriaan_i"
	RoleCouncilPendidikanKeceriaanII  Role = "council_pendidikan_keceriaan_ii"
)

// councilRoles 依名冊排序次序列出所有理事會職位
var councilRoles = []Role{
	RoleCouncilKetua,
	RoleCouncilTimbalanI,
	RoleCouncilTimbalanII,
	RoleCouncilSetiausahaKehormatI,
	RoleCouncilSetiausahaKehormatII,
	RoleCouncilBendahariKehormatI,
	RoleCouncilBendahariKehormatII,
	RoleCouncilKonsulDisiplinI,
	RoleCouncilKonsulDisiplinII,
	RoleCouncilKeselamatanI,
	RoleCouncilKeselamatanII,
	RoleCouncilPeneranganKerohanianI,
	RoleCouncilPeneranganKerohanianII,
	RoleCouncilPendidikanKeceriaanI,
	RoleCouncilPendidikanKeceriaanII,
}

// roleTitles 各角色的顯示名稱（校方使用馬來語職稱）
var roleTitles = map[Role]string{
	RoleTeacher:                       "Teacher",
	RolePrefect:                       "Prefect",
	RoleCouncilKetua:                  "Ketua Pengawas",
	RoleCouncilTimbalanI:              "Timbalan Ketua Pengawas I",
	RoleCouncilTimbalanII:             "Timbalan Ketua Pengawas II",
	RoleCouncilSetiausahaKehormatI:    "Setiausaha Kehormat I",
	RoleCouncilSetiausahaKehormatII:   "Setiausaha Kehormat II",
	RoleCouncilBendahariKehormatI:     "Bendahari Kehormat I",
	RoleCouncilBendahariKehormatII:    "Bendahari Kehormat II",
	RoleCouncilKonsulDisiplinI:        "Konsul Disiplin I",
	RoleCouncilKonsulDisiplinII:       "Konsul Disiplin II",
	RoleCouncilKeselamatanI:           "Konsul Keselamatan I",
	RoleCouncilKeselamatanII:          "Konsul Keselamatan II",
	RoleCouncilPeneranganKerohanianI:  "Konsul Penerangan & Kerohanian I",
	RoleCouncilPeneranganKerohanianII: "Konsul Penerangan & Kerohanian II",
	RoleCouncilPendidikanKeceriaanI:   "Konsul Pendidikan & Keceriaan I",
	RoleCouncilPendidikanKeceriaanII:  "Konsul Pendidikan & Keceriaan II",
}

// announcerRoles 允許發布和刪除公告的角色
var announcerRoles = map[Role]bool{
	RoleTeacher:                       true,
	RoleCouncilKetua:                  true,
	RoleCouncilTimbalanI:              true,
	RoleCouncilTimbalanII:             true,
	RoleCouncilPeneranganKerohanianI:  true,
	RoleCouncilPeneranganKerohanianII: true,
}

// Valid 判斷角色是否屬於已定義的集合，未知角色一律視為無權限
func (r Role) Valid() bool {
	_, ok := roleTitles[r]
	return ok
}

// Title 回傳角色的顯示名稱
func (r Role) Title() string {
	if title, ok := roleTitles[r]; ok {
		return title
	}
	return string(r)
}

// IsTeacher 判斷角色是否為老師
func (r Role) IsTeacher() bool {
	return r == RoleTeacher
}

// IsCouncil 判斷角色是否為理事會成員
func (r Role) IsCouncil() bool {
	return r.Valid() && strings.HasPrefix(string(r), "council_")
}

// CanPostAnnouncements 判斷角色是否可以發布和刪除公告
func (r Role) CanPostAnnouncements() bool {
	return announcerRoles[r]
}

// CanRate 判斷角色是否可以進入評分頁面
func (r Role) CanRate() bool {
	return r.IsTeacher() || r.IsCouncil()
}

// CanViewRoster 判斷角色是否可以查看完整的學生名冊
func (r Role) CanViewRoster() bool {
	return r.IsTeacher()
}

// RatableRoles 回傳該角色可以評分的對象角色
// 老師可以評學長和所有理事會成員，理事會成員只能評學長
func (r Role) RatableRoles() []Role {
	switch {
	case r.IsTeacher():
		return StudentRoles()
	case r.IsCouncil():
		return []Role{RolePrefect}
	default:
		return nil
	}
}

// Precedence 回傳名冊排序用的職位次序，理事會領導在前，學長在後
func (r Role) Precedence() int {
	for i, role := range councilRoles {
		if role == r {
			return i + 1
		}
	}
	if r == RolePrefect {
		return len(councilRoles) + 1
	}
	return len(councilRoles) + 2
}

// StudentRoles 回傳所有學生角色（學長加上理事會職位），名冊與評分查詢用
func StudentRoles() []Role {
	roles := make([]Role, 0, len(councilRoles)+1)
	roles = append(roles, RolePrefect)
	roles = append(roles, councilRoles...)
	return roles
}

// CouncilRoles 回傳所有理事會職位，依職位次序排列
func CouncilRoles() []Role {
	roles := make([]Role, len(councilRoles))
	copy(roles, councilRoles)
	return roles
}
