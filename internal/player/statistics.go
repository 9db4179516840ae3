package player

// Statistics tracks what happened during one game.
type Statistics struct {
	Commands       int          `json:"commands"`
	Moves          int          `json:"moves"`
	ForcedMoves    int          `json:"forced_moves"`
	ObjectsTaken   int          `json:"objects_taken"`
	ObjectsDropped int          `json:"objects_dropped"`
	Unrecognized   int          `json:"unrecognized"`
	RoomsVisited   map[int]bool `json:"-"`
}

func NewStatistics() *Statistics {
	return &Statistics{
		RoomsVisited: make(map[int]bool),
	}
}

// RecordCommand counts a command typed by the player.
func (s *Statistics) RecordCommand() {
	s.Commands++
}

// RecordMove counts a room change and remembers the room.
func (s *Statistics) RecordMove(room int) {
	s.Moves++
	s.RecordVisit(room)
}

// RecordVisit remembers a room without counting a move.
func (s *Statistics) RecordVisit(room int) {
	s.RoomsVisited[room] = true
}

func (s *Statistics) RecordForcedMove() {
	s.ForcedMoves++
}

func (s *Statistics) RecordTake() {
	s.ObjectsTaken++
}

func (s *Statistics) RecordDrop() {
	s.ObjectsDropped++
}

// RecordUnrecognized counts directions that led nowhere.
func (s *Statistics) RecordUnrecognized() {
	s.Unrecognized++
}

// DistinctRooms returns how many different rooms were entered.
func (s *Statistics) DistinctRooms() int {
	return len(s.RoomsVisited)
}
