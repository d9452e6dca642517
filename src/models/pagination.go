package models

// ค่าตั้งต้นของการแบ่งหน้า
const (
	defaultPage  = 1
	defaultLimit = 10
)

// PaginationParams รับค่าแบ่งหน้า ค้นหา และเรียงลำดับจาก query string
type PaginationParams struct {
	Page   int    `json:"page" query:"page" example:"1"`
	Limit  int    `json:"limit" query:"limit" example:"10"`
	Search string `json:"search" query:"search" example:""`
	SortBy string `json:"sortBy" query:"sortBy" example:"_id"`
	Order  string `json:"order" query:"order" example:"desc"`
}

// PaginatedResponse ห่อผลลัพธ์หนึ่งหน้าพร้อมข้อมูลการแบ่งหน้า
type PaginatedResponse struct {
	Data        interface{} `json:"data"`
	Total       int64       `json:"total"`
	Page        int         `json:"page"`
	Limit       int         `json:"limit"`
	TotalPages  int         `json:"totalPages"`
	HasNext     bool        `json:"hasNext"`
	HasPrevious bool        `json:"hasPrevious"`
}

// DefaultPagination ค่าเริ่มต้นสำหรับ pagination
func DefaultPagination() PaginationParams {
	return PaginationParams{
		Page:   defaultPage,
		Limit:  defaultLimit,
		SortBy: "_id",
		Order:  "asc",
	}
}

// Normalize clamps non-positive page/limit back to the defaults. QueryParser
// writes whatever the client sent, so ?page=0 or ?limit=-5 land here.
func (p *PaginationParams) Normalize() {
	if p.Page < 1 {
		p.Page = defaultPage
	}
	if p.Limit < 1 {
		p.Limit = defaultLimit
	}
}

// GetSkip คำนวณจำนวนรายการที่ต้องข้ามของหน้าปัจจุบัน
func (p *PaginationParams) GetSkip() int64 {
	p.Normalize()
	return int64((p.Page - 1) * p.Limit)
}

// GetSortOrder แปลง order เป็นทิศทางของ Mongo (1 = asc, -1 = desc)
func (p *PaginationParams) GetSortOrder() map[string]int {
	order := 1
	if p.Order == "desc" {
		order = -1
	}
	return map[string]int{p.SortBy: order}
}

// TotalPages นับจำนวนหน้าทั้งหมดจากจำนวนรายการ
func (p *PaginationParams) TotalPages(total int64) int {
	p.Normalize()
	pages := total / int64(p.Limit)
	if total%int64(p.Limit) != 0 {
		pages++
	}
	return int(pages)
}

// NewPaginatedResponse ประกอบผลลัพธ์หนึ่งหน้า
func NewPaginatedResponse(data interface{}, total int64, params PaginationParams) *PaginatedResponse {
	params.Normalize()
	totalPages := params.TotalPages(total)

	return &PaginatedResponse{
		Data:        data,
		Total:       total,
		Page:        params.Page,
		Limit:       params.Limit,
		TotalPages:  totalPages,
		HasNext:     params.Page < totalPages,
		HasPrevious: params.Page > 1,
	}
}
