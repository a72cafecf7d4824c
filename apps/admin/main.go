package main

import (
	"log"
	"os"

	"github.com/trezcool/ratiba/core/timetable"
	logsvc "github.com/trezcool/ratiba/services/logger"
	inmemdb "github.com/trezcool/ratiba/storage/inmem"
)

func main() {
	logger := logsvc.NewStdLogger(log.New(os.Stderr, "ADMIN : ", log.LstdFlags))

	cli := commandLine{
		out:    os.Stdout,
		outFd:  int(os.Stdout.Fd()),
		logger: logger,
		newService: func(seed int64) *timetable.Service {
			repo := inmemdb.NewTimetableRepository(inmemdb.Open())
			return timetable.NewService(timetable.NewSeededGenerator(seed), repo, logger)
		},
	}
	if err := cli.run(os.Args); err != nil {
		os.Exit(1)
	}
}
