package domain

// Member 會員，本系統只讀取不修改
type Member struct {
	ID   int64
	Name string
}
