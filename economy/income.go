package economy

// CollectIncome runs one passive income tick: every ship pays
// passengers x level, and the passenger total is re-derived from the fleet.
// It returns the amount credited.
func (s *State) CollectIncome() int64 {
	income := s.fleet.IncomePerTick()
	s.money += income
	s.passengers = s.fleet.TotalPassengers()

	s.refresh()
	return income
}
