package core

// Event is the room event packet published to redis and relayed to sockets
type Event struct {
	RoomID string  `json:"room_id"`
	Action string  `json:"action"` // create
	Body   Message `json:"body"`
}

// RoomChannel returns the pubsub channel name for a chat room.
func RoomChannel(roomID string) string {
	return "room:" + roomID
}
