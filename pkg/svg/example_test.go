package svg_test

import (
	"fmt"

	"github.com/matzehuels/svgkit/pkg/svg"
)

func Example() {
	b := svg.NewBuilder()
	c := b.Canvas(svg.Size(100, 100))
	c.Draw(b.Rect(10, 10, 30, 20).SetID("r1"))

	fmt.Println(c)
	// Output:
	// <svg xmlns="http://www.w3.org/2000/svg" width="100" height="100">
	//   <rect id="r1" x="10" y="10" width="30" height="20"/>
	// </svg>
}

func ExampleCanvas_Define() {
	b := svg.NewBuilder()
	c := b.Canvas(svg.Size(50, 50))

	fade := b.LinearGradient().SetID("fade").
		AddStop(b.Stop(0, "white"), b.Stop(1, "black"))
	c.Draw(b.Circle(25, 25, 20).SetFillGradient(fade))
	c.Define(fade)

	fmt.Println(c)
	// Output:
	// <svg xmlns="http://www.w3.org/2000/svg" width="50" height="50">
	//   <defs>
	//     <linearGradient id="fade">
	//       <stop offset="0" stop-color="white"/>
	//       <stop offset="1" stop-color="black"/>
	//     </linearGradient>
	//   </defs>
	//   <circle cx="25" cy="25" r="20" fill="url(#fade)"/>
	// </svg>
}

func ExampleFilter() {
	b := svg.NewBuilder()
	c := b.Canvas(svg.Size(40, 40))

	blur := b.GaussianBlur().SetInputSource(svg.SourceAlpha).SetStdDeviation(2).SetResult("blur")
	shadow := b.Filter("shadow").Add(
		blur,
		b.Offset().SetInput(blur).SetOffset(1, 1),
	)
	c.Draw(b.Rect(5, 5, 20, 20).SetFill("teal").UseFilter(shadow, c))

	fmt.Println(c)
	// Output:
	// <svg xmlns="http://www.w3.org/2000/svg" width="40" height="40">
	//   <defs>
	//     <filter id="shadow">
	//       <feGaussianBlur result="blur" in="SourceAlpha" stdDeviation="2"/>
	//       <feOffset in="blur" dx="1" dy="1"/>
	//     </filter>
	//   </defs>
	//   <rect x="5" y="5" width="20" height="20" filter="url(#shadow)" fill="teal"/>
	// </svg>
}

func ExamplePath() {
	b := svg.NewBuilder()
	p := b.Path(0, 0).LineTo(10, 0).QuadTo(15, 5, 10, 10).Close()
	fmt.Println(p.D())
	// Output: M0 0 L10 0 Q15 5, 10 10 Z
}
