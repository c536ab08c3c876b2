package entity

type Player struct {
	ID     string `json:"id"`
	Marker int    `json:"marker,omitempty"`
	GameID string `json:"game_id,omitempty"`
	Bot    bool   `json:"bot,omitempty"`
}

func (that *Player) IsBot() bool {
	return that.Bot
}
