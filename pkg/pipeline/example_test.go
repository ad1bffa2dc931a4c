package pipeline_test

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/matzehuels/transpose/pkg/columns"
	"github.com/matzehuels/transpose/pkg/pipeline"
	"github.com/matzehuels/transpose/pkg/rotate"
)

func ExampleRunner_Run() {
	runner := pipeline.NewRunner(nil, nil)
	in := []pipeline.Input{{Name: "-", R: strings.NewReader("a,b,c\n1,2,3\n")}}
	opts := pipeline.Options{
		Columns: columns.Options{Separator: ",", SeparatorSet: true},
	}
	if _, err := runner.Run(context.Background(), in, os.Stdout, opts); err != nil {
		fmt.Println(err)
	}
	// Output:
	// a,1
	// b,2
	// c,3
}

func ExampleRunner_Run_rotate() {
	runner := pipeline.NewRunner(nil, nil)
	in := []pipeline.Input{{Name: "-", R: strings.NewReader("1 2\n3 4\n")}}
	opts := pipeline.Options{
		Request:            rotate.Angle(-90, false),
		OutputSeparator:    " ",
		OutputSeparatorSet: true,
	}
	if _, err := runner.Run(context.Background(), in, os.Stdout, opts); err != nil {
		fmt.Println(err)
	}
	// Output:
	// 3 1
	// 4 2
}
