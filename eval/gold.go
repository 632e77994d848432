package eval

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/happyhackingspace/wordalign/alignment"
)

// Label is a gold-standard certainty label.
type Label string

const (
	Sure     Label = "S"
	Possible Label = "P"
)

// GoldLink is an annotated alignment link.
type GoldLink struct {
	alignment.Link
	Label Label
}

// GoldSentence holds the annotated links of one gold sentence.
type GoldSentence struct {
	Index int
	Links []GoldLink
}

// ParseGold parses "sentence_index source_pos target_pos label" lines. Runs of
// lines with the same sentence index form one GoldSentence, in file order.
func ParseGold(lines []string) ([]GoldSentence, error) {
	var out []GoldSentence
	for n, line := range lines {
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		if len(fields) != 4 {
			return nil, fmt.Errorf("eval: gold line %d: want 4 fields, got %d", n+1, len(fields))
		}
		idx, err := strconv.Atoi(fields[0])
		if err != nil {
			return nil, fmt.Errorf("eval: gold line %d: sentence index: %w", n+1, err)
		}
		link, err := alignment.ParseLink(fields[1] + "-" + fields[2])
		if err != nil {
			return nil, fmt.Errorf("eval: gold line %d: %w", n+1, err)
		}
		label := Label(fields[3])
		if label != Sure && label != Possible {
			return nil, fmt.Errorf("eval: gold line %d: unknown label %q", n+1, fields[3])
		}
		if len(out) == 0 || out[len(out)-1].Index != idx {
			out = append(out, GoldSentence{Index: idx})
		}
		cur := &out[len(out)-1]
		cur.Links = append(cur.Links, GoldLink{Link: link, Label: label})
	}
	return out, nil
}

// CompleteNull returns a copy of gold in which every target position
// 1..targetLengths[i] not covered by any link of sentence i is aligned to
// NULL with a Sure label. Added links come after the existing ones in
// ascending target order.
func CompleteNull(gold []GoldSentence, targetLengths []int) ([]GoldSentence, error) {
	if len(targetLengths) < len(gold) {
		return nil, fmt.Errorf("eval: %d gold sentences but %d target lengths", len(gold), len(targetLengths))
	}
	out := make([]GoldSentence, len(gold))
	for i, g := range gold {
		used := make(map[int]bool, len(g.Links))
		for _, l := range g.Links {
			used[l.Target] = true
		}
		links := make([]GoldLink, len(g.Links), len(g.Links)+targetLengths[i])
		copy(links, g.Links)
		for pos := 1; pos <= targetLengths[i]; pos++ {
			if !used[pos] {
				links = append(links, GoldLink{Link: alignment.Link{Source: 0, Target: pos}, Label: Sure})
			}
		}
		out[i] = GoldSentence{Index: g.Index, Links: links}
	}
	return out, nil
}
