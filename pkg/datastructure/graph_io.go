package datastructure

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/dsnet/compress/bzip2"
)

// hierarchy file layout (bzip2-compressed text):
//
//	numVertices numEdges
//	numEdges x: tail head weight shortcut firstPart secondPart
//	numVertices levels (one line, space separated)
//	numVertices core flags (one line, space separated, 0/1)

func WriteHierarchy(filename string, graph *StaticGraph, levels []float64, isCore []bool) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()

	bz, err := bzip2.NewWriter(f, &bzip2.WriterConfig{})
	if err != nil {
		return err
	}
	defer bz.Close()

	w := bufio.NewWriter(bz)

	numVertices := graph.NumberOfVertices()
	fmt.Fprintf(w, "%d %d\n", numVertices, graph.NumberOfEdges())

	for v := Index(0); v < Index(numVertices); v++ {
		graph.ForOutEdgesOf(v, func(e Index) {
			edge := graph.GetEdgeData(e)
			weightF := strconv.FormatFloat(edge.weight, 'f', -1, 64)
			shortcut := 0
			if edge.shortcut {
				shortcut = 1
			}
			fmt.Fprintf(w, "%d %d %s %d %d %d\n",
				v, edge.head, weightF, shortcut, edge.firstPart, edge.secondPart)
		})
	}

	for v := 0; v < numVertices; v++ {
		fmt.Fprintf(w, "%s", strconv.FormatFloat(levels[v], 'f', -1, 64))
		if v < numVertices-1 {
			fmt.Fprintf(w, " ")
		}
	}
	fmt.Fprintf(w, "\n")

	for v := 0; v < numVertices; v++ {
		core := 0
		if isCore[v] {
			core = 1
		}
		fmt.Fprintf(w, "%d", core)
		if v < numVertices-1 {
			fmt.Fprintf(w, " ")
		}
	}
	fmt.Fprintf(w, "\n")

	return w.Flush()
}

func ReadHierarchy(filename string) (*StaticGraph, []float64, []bool, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, nil, nil, err
	}
	defer f.Close()

	bz, err := bzip2.NewReader(f, nil)
	if err != nil {
		return nil, nil, nil, err
	}

	br := bufio.NewReader(bz)

	line, err := readLine(br)
	if err != nil {
		return nil, nil, nil, err
	}
	tokens := fields(line)
	if len(tokens) != 2 {
		return nil, nil, nil, errors.New("malformed hierarchy header")
	}
	numVertices, err := parseInt(tokens[0])
	if err != nil {
		return nil, nil, nil, err
	}
	numEdges, err := parseInt(tokens[1])
	if err != nil {
		return nil, nil, nil, err
	}

	queryEdges := make([]QueryEdge, 0, numEdges)
	for i := 0; i < numEdges; i++ {
		line, err = readLine(br)
		if err != nil {
			return nil, nil, nil, err
		}
		tokens = fields(line)
		if len(tokens) != 6 {
			return nil, nil, nil, errors.New("malformed hierarchy edge line")
		}
		tail, err := parseInt(tokens[0])
		if err != nil {
			return nil, nil, nil, err
		}
		head, err := parseInt(tokens[1])
		if err != nil {
			return nil, nil, nil, err
		}
		weight, err := strconv.ParseFloat(tokens[2], 64)
		if err != nil {
			return nil, nil, nil, err
		}
		shortcut, err := parseInt(tokens[3])
		if err != nil {
			return nil, nil, nil, err
		}
		firstPart, err := parseInt(tokens[4])
		if err != nil {
			return nil, nil, nil, err
		}
		secondPart, err := parseInt(tokens[5])
		if err != nil {
			return nil, nil, nil, err
		}
		queryEdges = append(queryEdges, NewQueryEdge(Index(tail), Index(head), weight,
			shortcut == 1, Index(firstPart), Index(secondPart)))
	}

	levels := make([]float64, numVertices)
	line, err = readLine(br)
	if err != nil {
		return nil, nil, nil, err
	}
	tokens = fields(line)
	if len(tokens) != numVertices {
		return nil, nil, nil, errors.New("malformed level line")
	}
	for v := 0; v < numVertices; v++ {
		levels[v], err = strconv.ParseFloat(tokens[v], 64)
		if err != nil {
			return nil, nil, nil, err
		}
	}

	isCore := make([]bool, numVertices)
	line, err = readLine(br)
	if err != nil {
		return nil, nil, nil, err
	}
	tokens = fields(line)
	if len(tokens) != numVertices {
		return nil, nil, nil, errors.New("malformed core flag line")
	}
	for v := 0; v < numVertices; v++ {
		core, err := parseInt(tokens[v])
		if err != nil {
			return nil, nil, nil, err
		}
		isCore[v] = core == 1
	}

	return NewStaticGraph(numVertices, queryEdges), levels, isCore, nil
}

// ReadWeightedEdgeList builds a dynamic working graph from a plain text
// edge list: a "numVertices numEdges" header followed by one
// "tail head weight" line per directed edge.
func ReadWeightedEdgeList(filename string) (*DynamicGraph, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	br := bufio.NewReader(f)

	line, err := readLine(br)
	if err != nil {
		return nil, err
	}
	tokens := fields(line)
	if len(tokens) != 2 {
		return nil, errors.New("malformed edge list header")
	}
	numVertices, err := parseInt(tokens[0])
	if err != nil {
		return nil, err
	}
	numEdges, err := parseInt(tokens[1])
	if err != nil {
		return nil, err
	}

	g := NewDynamicGraph(numVertices)
	for i := 0; i < numEdges; i++ {
		line, err = readLine(br)
		if err != nil {
			return nil, err
		}
		tokens = fields(line)
		if len(tokens) != 3 {
			return nil, errors.New("malformed edge list line")
		}
		tail, err := parseInt(tokens[0])
		if err != nil {
			return nil, err
		}
		head, err := parseInt(tokens[1])
		if err != nil {
			return nil, err
		}
		weight, err := strconv.ParseFloat(tokens[2], 64)
		if err != nil {
			return nil, err
		}
		if tail < 0 || tail >= numVertices || head < 0 || head >= numVertices || weight < 0 {
			return nil, fmt.Errorf("invalid edge %d: %s", i, line)
		}
		g.InsertEdge(NewCHEdge(Index(tail), Index(head), weight))
	}

	return g, nil
}

func readLine(br *bufio.Reader) (string, error) {
	line, err := br.ReadString('\n')
	if err != nil && err != io.EOF {
		return "", err
	}
	if len(line) == 0 && err == io.EOF {
		return "", io.ErrUnexpectedEOF
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func fields(line string) []string {
	return strings.Fields(line)
}

func parseInt(token string) (int, error) {
	return strconv.Atoi(token)
}
