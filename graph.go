package movies

// Node labels used in a GraphView.
const (
	LabelMovie = "movie"
	LabelActor = "actor"
)

// GraphNode is a node of a GraphView.
type GraphNode struct {
	Title string `json:"title"`
	Label string `json:"label"`
}

// GraphLink connects two GraphView nodes by index.
type GraphLink struct {
	Source int `json:"source"`
	Target int `json:"target"`
}

// GraphView is the node/link list consumed by the force-graph page.
// Nodes keep insertion order and every link refers to nodes appended
// before it.
type GraphView struct {
	Nodes []GraphNode `json:"nodes"`
	Links []GraphLink `json:"links"`

	actors map[string]int
}

// NewGraphView returns an empty view that encodes as empty arrays.
func NewGraphView() *GraphView {
	return &GraphView{
		Nodes:  []GraphNode{},
		Links:  []GraphLink{},
		actors: make(map[string]int),
	}
}

// AddMovie appends a movie node and links every cast member to it. A cast
// member already in the view is reused rather than appended again.
func (g *GraphView) AddMovie(title string, cast []string) {
	if g.actors == nil {
		g.actors = make(map[string]int)
	}

	target := g.appendNode(GraphNode{Title: title, Label: LabelMovie})

	for _, name := range cast {
		source, ok := g.actors[name]
		if !ok {
			source = g.appendNode(GraphNode{Title: name, Label: LabelActor})
			g.actors[name] = source
		}

		g.Links = append(g.Links, GraphLink{Source: source, Target: target})
	}
}

func (g *GraphView) appendNode(n GraphNode) int {
	g.Nodes = append(g.Nodes, n)

	return len(g.Nodes) - 1
}
