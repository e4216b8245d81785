package core

// Request types

type MoveRequest struct {
	From string `json:"from" validate:"required,len=2"`
	To   string `json:"to" validate:"required,len=2"`
}

// Response types

type PieceInfo struct {
	Square string `json:"square"`
	Kind   string `json:"kind"` // "pawn", "knight", ...
	Side   string `json:"side"` // "w" or "b"
	Symbol string `json:"symbol"`
}

type GameResponse struct {
	GameID    string      `json:"gameId"`
	Name      string      `json:"name"` // nickname, not unique
	Turn      string      `json:"turn"`  // "w" or "b"
	State     string      `json:"state"` // "white to move", "black to move"
	Finished  bool        `json:"finished"`
	Placement string      `json:"placement"`
	Version   int         `json:"version"` // accepted moves so far
	Pieces    []PieceInfo `json:"pieces"`
	LastMove  *MoveInfo   `json:"lastMove,omitempty"`
}

type MoveInfo struct {
	From     string `json:"from"`
	To       string `json:"to"`
	Side     string `json:"side"`
	Captured string `json:"captured,omitempty"`
}

type SquareResponse struct {
	Square   string   `json:"square"`
	Occupied bool     `json:"occupied"`
	Piece    string   `json:"piece,omitempty"`
	Friendly *bool    `json:"friendly,omitempty"` // nil when empty
	Moves    []string `json:"moves"`
}

type MovesResponse struct {
	Square string   `json:"square"`
	Moves  []string `json:"moves"`
}

type BoardResponse struct {
	Placement string `json:"placement"`
	Board     string `json:"board"` // ASCII representation
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code"`
	Details string `json:"details,omitempty"`
}
