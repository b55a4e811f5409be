package respond

// InstitutionRespond 机构响应
// 使用位置:
//   - internal/service/org/service.go: GetInstitutionList, CreateInstitution
type InstitutionRespond struct {
	Uuid        string `json:"uuid"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
	City        string `json:"city"`
	Website     string `json:"website"`
}

// DepartmentRespond 院系响应
// 使用位置:
//   - internal/service/org/service.go: GetDepartmentList, CreateDepartment
type DepartmentRespond struct {
	Uuid            string `json:"uuid"`
	InstitutionUuid string `json:"institution_uuid"`
	Name            string `json:"name"`
	Description     string `json:"description"`
}

// RoomRespond 教室响应
// 使用位置:
//   - internal/service/org/service.go: GetRoomList, CreateRoom
type RoomRespond struct {
	Uuid           string `json:"uuid"`
	DepartmentUuid string `json:"department_uuid"`
	Name           string `json:"name"`
	Building       string `json:"building"`
	Capacity       int    `json:"capacity"`
}

// GetInstitutionListRespond 机构列表响应
type GetInstitutionListRespond struct {
	Institutions []InstitutionRespond `json:"institutions"`
	Pagination   Pagination           `json:"pagination"`
}

// GetDepartmentListRespond 院系列表响应
type GetDepartmentListRespond struct {
	Departments []DepartmentRespond `json:"departments"`
	Pagination  Pagination          `json:"pagination"`
}

// GetRoomListRespond 教室列表响应
type GetRoomListRespond struct {
	Rooms      []RoomRespond `json:"rooms"`
	Pagination Pagination    `json:"pagination"`
}
