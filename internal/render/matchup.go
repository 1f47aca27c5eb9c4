package render

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"strconv"

	"crease/internal/api"
	"crease/internal/theme"

	"github.com/dominikbraun/graph"
	"github.com/goccy/go-graphviz"
)

// Player roles in the matchup graph
const (
	RoleBowler  = "bowler"
	RoleBatsman = "batsman"
)

// Player is a vertex of the matchup graph. A name can appear in both roles.
type Player struct {
	Name string
	Role string
}

// ID is the vertex hash
func (p Player) ID() string {
	return p.Role + ":" + p.Name
}

// BuildMatchupGraph links every bowler to the batsmen they bowled at.
// Edge weights are runs conceded; balls and wickets are edge attributes.
func BuildMatchupGraph(matchups []api.Matchup) (graph.Graph[string, Player], error) {
	g := graph.New(Player.ID, graph.Directed())

	for _, m := range matchups {
		bowler := Player{Name: m.Bowler, Role: RoleBowler}
		batsman := Player{Name: m.Batsman, Role: RoleBatsman}
		for _, p := range []Player{bowler, batsman} {
			if err := g.AddVertex(p); err != nil && !errors.Is(err, graph.ErrVertexAlreadyExists) {
				return nil, fmt.Errorf("add %s: %w", p.ID(), err)
			}
		}

		err := g.AddEdge(bowler.ID(), batsman.ID(),
			graph.EdgeWeight(m.Runs),
			graph.EdgeAttribute("balls", strconv.Itoa(m.Balls)),
			graph.EdgeAttribute("wickets", strconv.Itoa(m.Wickets)),
		)
		if err != nil {
			return nil, fmt.Errorf("link %s to %s: %w", m.Bowler, m.Batsman, err)
		}
	}
	return g, nil
}

// MatchupGraph renders the bowler to batsman graph with graphviz
func MatchupGraph(ctx context.Context, matchups []api.Matchup, opts Options) (image.Image, error) {
	opts = opts.withDefaults()
	field := opts.Theme.FieldColors()
	if len(matchups) == 0 {
		return placeholder(opts.Width, opts.Height, "No matchups",
			theme.RGBA(field.Background), theme.RGBA(field.Text)), nil
	}

	g, err := BuildMatchupGraph(matchups)
	if err != nil {
		return nil, err
	}
	adjacency, err := g.AdjacencyMap()
	if err != nil {
		return nil, fmt.Errorf("failed to get adjacency map: %w", err)
	}

	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create graphviz instance: %w", err)
	}
	defer gv.Close()

	gvGraph, err := gv.Graph()
	if err != nil {
		return nil, fmt.Errorf("failed to create graphviz graph: %w", err)
	}
	defer gvGraph.Close()

	gvGraph.SetLayout("dot")
	gvGraph.SetRankDir("LR")
	gvGraph.SetBackgroundColor(hexColor(theme.RGBA(field.Background)))
	gvGraph.SetDPI(96.0)

	score := opts.Theme.ScoreColors()
	nodes := make(map[string]*graphviz.Node, len(adjacency))
	for id := range adjacency {
		player, err := g.Vertex(id)
		if err != nil {
			return nil, err
		}
		node, err := gvGraph.CreateNodeByName(id)
		if err != nil {
			return nil, fmt.Errorf("create node %s: %w", id, err)
		}
		node.SetLabel(player.Name)
		node.SetShape("box")
		node.SetStyle("filled,rounded")
		node.SetFontSize(14.0)
		node.SetFontColor("black")
		if player.Role == RoleBowler {
			node.SetFillColor(hexColor(theme.RGBA(score.Runs)))
		} else {
			node.SetFillColor(hexColor(theme.RGBA(field.Boundary)))
		}
		nodes[id] = node
	}

	text := hexColor(theme.RGBA(field.Text))
	for source, targets := range adjacency {
		for target, e := range targets {
			edge, err := gvGraph.CreateEdgeByName("", nodes[source], nodes[target])
			if err != nil {
				return nil, fmt.Errorf("create edge %s -> %s: %w", source, target, err)
			}
			balls := e.Properties.Attributes["balls"]
			wickets, _ := strconv.Atoi(e.Properties.Attributes["wickets"])

			label := balls + "b " + strconv.Itoa(e.Properties.Weight) + "r"
			edge.SetColor(text)
			if wickets > 0 {
				label += " " + strconv.Itoa(wickets) + "W"
				edge.SetColor(hexColor(theme.RGBA(score.Wicket)))
			}
			edge.SetLabel(label)
			edge.SetFontColor(text)
			edge.SetPenWidth(1 + float64(e.Properties.Weight)/6)
			edge.SetDir("forward")
			edge.SetArrowHead("normal")
		}
	}

	var buf bytes.Buffer
	if err := gv.Render(ctx, gvGraph, graphviz.PNG, &buf); err != nil {
		return nil, fmt.Errorf("failed to render matchup graph: %w", err)
	}
	if buf.Len() == 0 {
		return nil, errors.New("graphviz render produced no PNG output")
	}
	img, err := png.Decode(&buf)
	if err != nil {
		return nil, fmt.Errorf("failed to decode PNG: %w", err)
	}
	return img, nil
}

func hexColor(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
