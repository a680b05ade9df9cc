package entity

import "time"

// Vote registro de que VoterID votó por IdeaID. La pareja (IdeaID, VoterID) es única en el store.
type Vote struct {
	IdeaID    int64
	VoterID   string
	CreatedAt time.Time
}
