// Command lctreedemo runs the worked example from the link-cut tree
// literature: build a small forest, query connectivity and the heaviest
// node on a path, cut an edge, and observe connectivity change.
package main

import (
	"fmt"

	"github.com/g-m-twostay/lctree"
)

func main() {
	// We form a link-cut tree for the following forest
	// (the numbers in parentheses are the weights of the nodes):
	//            a(9)
	//           /    \
	//         b(1)    e(2)
	//        /   \       \
	//      c(8)  d(10)   f(4)
	lt := lctree.NewMaxByWeight[float64]()
	a := lt.MakeTree(9)
	b := lt.MakeTree(1)
	c := lt.MakeTree(8)
	d := lt.MakeTree(10)
	e := lt.MakeTree(2)
	f := lt.MakeTree(4)

	must(lt.Link(b, a))
	must(lt.Link(c, b))
	must(lt.Link(d, b))
	must(lt.Link(e, a))
	must(lt.Link(f, e))

	fmt.Printf("connected(c, f) = %v\n", lt.Connected(c, f))

	heaviest, err := lt.Path(c, f)
	must(err)
	fmt.Printf("heaviest node on path(c, f) = handle %d, weight %.1f\n", heaviest.Handle, heaviest.Weight)

	must(lt.Cut(e, a))
	fmt.Printf("connected(c, f) after cut(e, a) = %v\n", lt.Connected(c, f))
}

func must(err error) {
	if err != nil {
		panic(err)
	}
}
