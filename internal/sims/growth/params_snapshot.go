package growth

import (
	"strconv"

	"cellmaze/internal/core"
	"cellmaze/internal/maze"
)

// Parameters reports the configuration and live counters for display.
func (g *Generator) Parameters() core.ParameterSnapshot {
	st := g.engine.Stats()
	groups := []core.ParameterGroup{
		{
			Name: "Grid",
			Params: []core.Parameter{
				intParam("dim", "Dimension", g.cfg.Dimension),
				{Key: "origin", Label: "Origin", Type: core.ParamTypeString, Value: maze.FormatPos(g.cfg.Origin)},
				int64Param("seed", "Seed", g.cfg.Seed),
			},
		},
		{
			Name: "Growth",
			Params: []core.Parameter{
				intParam("branch_prob", "Branch chance %", g.cfg.Params.BranchProb),
				intParam("turn_prob", "Straight chance %", g.cfg.Params.TurnProb),
			},
		},
		{
			Name:    "Progress",
			Summary: progressSummary(g),
			Params: []core.Parameter{
				intParam("ticks", "Ticks", st.Ticks),
				intParam("joined", "Joined", g.grid.Len()-g.grid.Count(maze.Disconnected)),
				intParam("invites", "Invites", st.Invites),
				intParam("branches", "Branches", st.Branches),
				intParam("reseeds", "Reseeds", st.Reseeds),
				intParam("dead_ends", "Dead ends", st.DeadEnds),
			},
		},
	}
	return core.ParameterSnapshot{Groups: groups}
}

func progressSummary(g *Generator) string {
	if g.done {
		return "complete"
	}
	return "growing"
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}

func int64Param(key, label string, value int64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.FormatInt(value, 10),
	}
}
