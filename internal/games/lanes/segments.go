package lanes

import (
	"github.com/vovakirdan/lanerunner/internal/core"
	"github.com/vovakirdan/lanerunner/internal/registry"
	"github.com/vovakirdan/lanerunner/internal/runner"
)

// Lane centers across the track, top to bottom.
var laneY = [...]float64{3, 1.5, 0, -1.5, -3}

// landmarkInset is how far before a segment's end its landmark sits. It
// matches the default spawn_point.ahead so consecutive segments abut.
const landmarkInset = 2

func landmark(length float64) runner.ChildSpec {
	return runner.ChildSpec{Name: "Landmark", Offset: core.V2(length-landmarkInset, 0)}
}

func rock(x float64, lane int) runner.ChildSpec {
	return runner.ChildSpec{Name: "Rock", Tag: runner.TagObstacle, Offset: core.V2(x, laneY[lane]), Size: core.V2(1, 1), Solid: true}
}

func gate(x float64, lane int) runner.ChildSpec {
	return runner.ChildSpec{Name: "Gate", Tag: runner.TagSpawnObstacle, Offset: core.V2(x, laneY[lane]), Size: core.V2(0.5, 1.2), Solid: true}
}

func coin(x float64, lane int) runner.ChildSpec {
	return runner.ChildSpec{Name: "Coin", Tag: runner.TagCoin, Offset: core.V2(x, laneY[lane]), Size: core.V2(0.5, 0.5)}
}

func pickup(tag runner.Tag, x float64, lane int) runner.ChildSpec {
	return runner.ChildSpec{Name: string(tag), Tag: tag, Offset: core.V2(x, laneY[lane]), Size: core.V2(0.5, 0.5)}
}

func cube(x float64, lane int) runner.ChildSpec {
	return runner.ChildSpec{Name: "Cube", Tag: runner.TagCube, Offset: core.V2(x, laneY[lane]), Size: core.V2(1, 1), Solid: true}
}

// Level 1: scattered rocks with a coin trail through the gaps.
func levelOne() runner.SegmentKind {
	const length = 16
	return runner.SegmentKind{
		Length: length,
		Children: []runner.ChildSpec{
			landmark(length),
			rock(3, 0), rock(3, 1),
			coin(3, 3), coin(4, 3), coin(5, 3),
			rock(8, 3), rock(8, 4),
			coin(8, 1), coin(9, 1),
			rock(13, 2),
			coin(12, 0), coin(13, 0), coin(14, 0),
		},
	}
}

// Level 2: a slalom with a multiplier and a speed pickup.
func levelTwo() runner.SegmentKind {
	const length = 20
	return runner.SegmentKind{
		Length: length,
		Children: []runner.ChildSpec{
			landmark(length),
			rock(2, 2), rock(2, 3), rock(2, 4),
			pickup(runner.TagScoreMultiplier, 2, 0),
			rock(7, 0), rock(7, 1), rock(7, 2),
			coin(7, 4), coin(8, 4),
			pickup(runner.TagSpeed, 11, 2),
			rock(15, 1), rock(15, 3),
			coin(15, 2), coin(16, 2), coin(17, 2),
		},
	}
}

// Level 3: loose cubes to shove aside and a closing gate.
func levelThree() runner.SegmentKind {
	const length = 18
	return runner.SegmentKind{
		Length: length,
		Children: []runner.ChildSpec{
			landmark(length),
			cube(3, 1), cube(4, 3),
			coin(6, 0), coin(6, 4),
			cube(9, 2),
			pickup(runner.TagScoreMultiplier, 11, 4),
			gate(14, 0), gate(14, 1), gate(14, 3), gate(14, 4),
			coin(14, 2),
		},
	}
}

func init() {
	registry.Register("Level 1", levelOne)
	registry.Register("Level 2", levelTwo)
	registry.Register("Level 3", levelThree)
}
