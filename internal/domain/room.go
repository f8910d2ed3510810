package domain

// Room 房间：楼层 + 房号 + 最多一个住户
// 同一住户同一时间最多占用一个房间（后端保证，客户端只发送 link/unlink）
type Room struct {
	ID         int       `json:"id" validate:"required"`
	Floor      int       `json:"floor"`
	RoomNumber string    `json:"room_number" validate:"required"`
	ResidentID *int      `json:"resident_id"`
	Resident   *Resident `json:"resident,omitempty"`
}

// Occupied 是否已有住户
func (r Room) Occupied() bool { return r.ResidentID != nil }

// RoomInput 房间创建/更新
type RoomInput struct {
	Floor      int    `json:"floor"`
	RoomNumber string `json:"room_number" validate:"required"`
}
