package interfaces

import "io"

type Replayer interface {
	Run(scriptFilename string, out io.Writer) error
}
