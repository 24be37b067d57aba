package main

import (
	"flag"

	"github.com/lintang-b-s/Contractorx/pkg/contractor"
	"github.com/lintang-b-s/Contractorx/pkg/datastructure"
	"github.com/lintang-b-s/Contractorx/pkg/logger"
	"github.com/lintang-b-s/Contractorx/pkg/util"
	"github.com/spf13/viper"
)

var (
	graphFile = flag.String("graph", "./data/graph.txt", "weighted edge list input file")
	outFile   = flag.String("out", "./data/hierarchy.graph", "contracted hierarchy output file")
)

func main() {
	flag.Parse()
	logger, err := logger.New()
	if err != nil {
		panic(err)
	}

	if err := util.ReadConfig(); err != nil {
		logger.Sugar().Warnf("no config file, using defaults: %v", err)
	}
	viper.SetDefault("contractor.core_factor", 1.0)
	viper.SetDefault("contractor.use_cached_priority", false)
	coreFactor := viper.GetFloat64("contractor.core_factor")

	graph, err := datastructure.ReadWeightedEdgeList(*graphFile)
	if err != nil {
		panic(err)
	}
	logger.Sugar().Infof("loaded graph with %d vertices and %d edges",
		graph.NumberOfVertices(), graph.NumberOfEdges())

	var cachedLevels []float64
	if viper.GetBool("contractor.use_cached_priority") {
		_, cachedLevels, _, err = datastructure.ReadHierarchy(*outFile)
		if err != nil {
			logger.Sugar().Warnf("could not read cached levels, doing a fresh run: %v", err)
			cachedLevels = nil
		}
	}

	levels, isCore, err := contractor.ContractGraphAllNodes(graph, cachedLevels, nil, coreFactor, logger)
	if err != nil {
		panic(err)
	}

	queryGraph := contractor.BuildQueryGraph(graph)
	if err := datastructure.WriteHierarchy(*outFile, queryGraph, levels, isCore); err != nil {
		panic(err)
	}

	logger.Sugar().Infof("contraction hierarchy written to %s", *outFile)
}
