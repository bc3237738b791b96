package litterlogic

// load collects from the task of the bin underfoot when there is a task and
// room to carry it. Otherwise it steps off in a random direction so an
// exhausted bin, or one claimed by another agent, cannot hold the agent
// forever. carried is the level of the bin's own material.
func (p *Policy) load(task *Task, carried int, timestep int64) Action {
	if task != nil && carried < p.cfg.MaxLitter {
		p.mem.BinTarget = NullPosition{}
		return Load{Task: task}
	}
	dir := randomDirection(p.src)
	p.logger.Printf("tick %d: cannot load here, stepping %s", timestep, dir)
	return Move{Direction: dir}
}
