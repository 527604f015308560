package cli

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/MakeNowJust/heredoc"
	"github.com/goto/lineage/core/asset"
	"github.com/goto/lineage/core/lineage"
	"github.com/goto/salt/printer"
	"github.com/goto/salt/term"
	"github.com/spf13/cobra"
)

const outputJSON = "json"

func lineageCommands(cfg *Config) []*cobra.Command {
	return []*cobra.Command{
		listCommand(cfg),
		graphCommand(cfg),
		snapshotCommand(cfg),
	}
}

func listCommand(cfg *Config) *cobra.Command {
	var (
		direction, includesCond, whereAssetsCond string
		depth, size                              int
		includes, whereAssets, whereRelations    []string
		attributes                               []string
		immediate, withMeanings, withTags        bool
		output                                   string
	)

	cmd := &cobra.Command{
		Use:   "list <guid>",
		Short: "List assets in the lineage of an asset",
		Args:  cobra.ExactArgs(1),
		Annotations: map[string]string{
			"group": "core",
		},
		Example: heredoc.Doc(`
			$ lineage list <guid>
			$ lineage list <guid> --direction upstream --include __typeName:eq:Table
			$ lineage list <guid> --where-asset certificateStatus:neq:DEPRECATED --attributes owner,certificateStatus
		`),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := lineage.ParseDirection(direction)
			if err != nil {
				return err
			}

			fluent := lineage.NewFluent(args[0]).
				Direction(dir).
				Depth(depth).
				Size(size).
				ImmediateNeighbors(immediate).
				ExcludeMeanings(!withMeanings).
				ExcludeClassifications(!withTags).
				IncludeOnResults(attributeFields(attributes)...)

			fluent, err = applyFilters(fluent, includes, whereAssets, whereRelations, includesCond, whereAssetsCond)
			if err != nil {
				return err
			}

			spinner := printer.Spin("")
			defer spinner.Stop()

			svc, cleanup, err := newLineageService(cmd.Context(), cfg, false)
			if err != nil {
				return err
			}
			defer cleanup()

			assets, err := svc.List(cmd.Context(), fluent)
			if err != nil {
				return err
			}
			spinner.Stop()

			if output == outputJSON {
				fmt.Println(term.Bluef(prettyPrint(assets)))
				return nil
			}
			printAssets(assets)
			fmt.Println(term.Cyanf("To view all the data in JSON format, use flag `-o json`"))
			return nil
		},
	}

	cmd.Flags().StringVarP(&direction, "direction", "d", "downstream", "lineage direction: upstream or downstream")
	cmd.Flags().IntVar(&depth, "depth", lineage.DefaultDepth, "number of hops to traverse")
	cmd.Flags().IntVarP(&size, "size", "s", lineage.DefaultSize, "page size used while fetching")
	cmd.Flags().StringArrayVar(&includes, "include", nil, "filter on returned assets, attribute:operator[:value]")
	cmd.Flags().StringArrayVar(&whereAssets, "where-asset", nil, "only traverse through matching assets, attribute:operator[:value]")
	cmd.Flags().StringArrayVar(&whereRelations, "where-relationship", nil, "only traverse through matching relationships, attribute:operator[:value]")
	cmd.Flags().StringVar(&includesCond, "include-condition", string(lineage.ConditionAnd), "how --include filters combine: AND or OR")
	cmd.Flags().StringVar(&whereAssetsCond, "where-asset-condition", string(lineage.ConditionAnd), "how --where-asset filters combine: AND or OR")
	cmd.Flags().StringSliceVar(&attributes, "attributes", nil, "extra attributes to return for every asset")
	cmd.Flags().BoolVar(&immediate, "immediate-neighbors", false, "return the immediate neighbours of every asset")
	cmd.Flags().BoolVar(&withMeanings, "with-meanings", false, "return glossary terms of every asset")
	cmd.Flags().BoolVar(&withTags, "with-classifications", false, "return classifications of every asset")
	cmd.Flags().StringVarP(&output, "out", "o", "table", "flag to control output viewing, for json `-o json`")

	return cmd
}

func applyFilters(f lineage.Fluent, includes, whereAssets, whereRelations []string, includesCond, whereAssetsCond string) (lineage.Fluent, error) {
	inc, err := parseFilters(includes)
	if err != nil {
		return f, err
	}
	wa, err := parseFilters(whereAssets)
	if err != nil {
		return f, err
	}
	wr, err := parseFilters(whereRelations)
	if err != nil {
		return f, err
	}
	ic, err := parseCondition(includesCond)
	if err != nil {
		return f, err
	}
	wc, err := parseCondition(whereAssetsCond)
	if err != nil {
		return f, err
	}

	return f.IncludesInResults(inc...).
		IncludesCondition(ic).
		WhereAssets(wa...).
		WhereAssetsCondition(wc).
		WhereRelationships(wr...), nil
}

func graphCommand(cfg *Config) *cobra.Command {
	var (
		direction string
		depth     int
		all       bool
		processes bool
		hideProc  bool
		output    string
	)

	cmd := &cobra.Command{
		Use:   "graph <guid>",
		Short: "Show the neighbours of an asset in the lineage graph",
		Args:  cobra.ExactArgs(1),
		Annotations: map[string]string{
			"group": "core",
		},
		Example: heredoc.Doc(`
			$ lineage graph <guid>
			$ lineage graph <guid> --direction both --all
			$ lineage graph <guid> --direction upstream --processes
		`),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := lineage.ParseDirection(direction)
			if err != nil {
				return err
			}

			req := lineage.NewGraphRequest(args[0])
			req.Direction = dir
			req.Depth = depth
			req.HideProcess = hideProc

			spinner := printer.Spin("")
			defer spinner.Stop()

			svc, cleanup, err := newLineageService(cmd.Context(), cfg, false)
			if err != nil {
				return err
			}
			defer cleanup()

			resp, err := svc.GetResponse(cmd.Context(), req)
			if err != nil {
				return err
			}
			assets, err := neighbours(resp, dir, all, processes)
			if err != nil {
				return err
			}
			spinner.Stop()

			if output == outputJSON {
				fmt.Println(term.Bluef(prettyPrint(assets)))
				return nil
			}
			printAssets(assets)
			return nil
		},
	}

	cmd.Flags().StringVarP(&direction, "direction", "d", "downstream", "lineage direction: upstream, downstream or both")
	cmd.Flags().IntVar(&depth, "depth", lineage.DefaultDepth, "number of hops fetched from the catalog")
	cmd.Flags().BoolVar(&all, "all", false, "follow the graph transitively instead of one hop")
	cmd.Flags().BoolVar(&processes, "processes", false, "show the processes around the asset instead of assets")
	cmd.Flags().BoolVar(&hideProc, "hide-process", false, "ask the catalog to hide process vertices")
	cmd.Flags().StringVarP(&output, "out", "o", "table", "flag to control output viewing, for json `-o json`")

	return cmd
}

func neighbours(resp *lineage.Response, dir lineage.Direction, all, processes bool) ([]asset.Asset, error) {
	switch {
	case processes && all:
		return nil, fmt.Errorf("--processes and --all cannot be combined")
	case processes:
		switch dir {
		case lineage.DirectionUpstream:
			return resp.UpstreamProcesses("")
		case lineage.DirectionDownstream:
			return resp.DownstreamProcesses("")
		}
		up, err := resp.UpstreamProcesses("")
		if err != nil {
			return nil, err
		}
		down, err := resp.DownstreamProcesses("")
		if err != nil {
			return nil, err
		}
		return append(up, down...), nil
	}

	g, err := resp.Graph()
	if err != nil {
		return nil, err
	}
	var guids []string
	if all {
		guids = g.AllAssetGUIDsDFS(resp.BaseEntityGUID, dir)
	} else {
		guids = g.AssetGUIDs(resp.BaseEntityGUID, dir)
	}

	assets := make([]asset.Asset, 0, len(guids))
	for _, guid := range guids {
		a, err := resp.Asset(guid)
		if err != nil {
			return nil, err
		}
		assets = append(assets, a)
	}
	return assets, nil
}

func snapshotCommand(cfg *Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "snapshot <command>",
		Short: "Save, show and compare lineage snapshots",
		Annotations: map[string]string{
			"group": "core",
		},
		Example: heredoc.Doc(`
			$ lineage snapshot save <guid>
			$ lineage snapshot show <id>
			$ lineage snapshot diff <from-id> <to-id>
		`),
	}

	cmd.AddCommand(
		snapshotSaveCommand(cfg),
		snapshotShowCommand(cfg),
		snapshotDiffCommand(cfg),
	)
	return cmd
}

func snapshotSaveCommand(cfg *Config) *cobra.Command {
	var (
		direction string
		depth     int
	)

	cmd := &cobra.Command{
		Use:   "save <guid>",
		Short: "Fetch the lineage of an asset and store it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := lineage.ParseDirection(direction)
			if err != nil {
				return err
			}
			req := lineage.NewGraphRequest(args[0])
			req.Direction = dir
			req.Depth = depth

			spinner := printer.Spin("")
			defer spinner.Stop()

			svc, cleanup, err := newLineageService(cmd.Context(), cfg, true)
			if err != nil {
				return err
			}
			defer cleanup()

			id, resp, err := svc.Snapshot(cmd.Context(), req)
			if err != nil {
				return err
			}
			spinner.Stop()

			fmt.Printf("snapshot %s saved with %d relations and %d assets\n",
				term.Greenf(id), len(resp.Relations), len(resp.GUIDEntityMap))
			return nil
		},
	}

	cmd.Flags().StringVarP(&direction, "direction", "d", "both", "lineage direction: upstream, downstream or both")
	cmd.Flags().IntVar(&depth, "depth", lineage.DefaultDepth, "number of hops fetched from the catalog")
	return cmd
}

func snapshotShowCommand(cfg *Config) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Print a stored lineage snapshot",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, cleanup, err := newLineageService(cmd.Context(), cfg, true)
			if err != nil {
				return err
			}
			defer cleanup()

			resp, err := svc.LoadSnapshot(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			fmt.Println(term.Bluef(prettyPrint(resp)))
			return nil
		},
	}
}

func snapshotDiffCommand(cfg *Config) *cobra.Command {
	return &cobra.Command{
		Use:   "diff <from-id> <to-id>",
		Short: "Show how the lineage changed between two snapshots",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, cleanup, err := newLineageService(cmd.Context(), cfg, true)
			if err != nil {
				return err
			}
			defer cleanup()

			cmp, err := svc.CompareSnapshots(cmd.Context(), args[0], args[1])
			if err != nil {
				return err
			}
			printComparison(cmp)
			return nil
		},
	}
}

func printAssets(assets []asset.Asset) {
	report := [][]string{{"GUID", "TYPE", "NAME", "QUALIFIED NAME", "STATUS"}}
	for _, a := range assets {
		report = append(report, []string{a.GUID, a.TypeName.String(), term.Bluef(a.Name()), a.QualifiedName(), a.Status})
	}
	printer.Table(os.Stdout, report)
}

func printComparison(cmp lineage.Comparison) {
	if cmp.IsEmpty() {
		fmt.Println(term.Greenf("no lineage changes"))
		return
	}

	report := [][]string{{"CHANGE", "FROM", "PROCESS", "TO"}}
	for _, r := range cmp.AddedRelations {
		report = append(report, []string{term.Greenf("+ relation"), r.FromEntityID, r.ProcessID, r.ToEntityID})
	}
	for _, r := range cmp.RemovedRelations {
		report = append(report, []string{term.Redf("- relation"), r.FromEntityID, r.ProcessID, r.ToEntityID})
	}
	printer.Table(os.Stdout, report)

	if len(cmp.AddedAssets) > 0 {
		fmt.Println(term.Greenf("+ assets: %s", strings.Join(cmp.AddedAssets, ", ")))
	}
	if len(cmp.RemovedAssets) > 0 {
		fmt.Println(term.Redf("- assets: %s", strings.Join(cmp.RemovedAssets, ", ")))
	}

	guids := make([]string, 0, len(cmp.AssetChanges))
	for guid := range cmp.AssetChanges {
		guids = append(guids, guid)
	}
	sort.Strings(guids)
	for _, guid := range guids {
		fmt.Println(term.Yellow("~ " + guid))
		for _, c := range cmp.AssetChanges[guid] {
			fmt.Printf("    %s %s: %v -> %v\n", c.Type, strings.Join(c.Path, "."), c.From, c.To)
		}
	}
}
