package session

func (s *Session) PendingCount() int {
	return s.pendingCount()
}
