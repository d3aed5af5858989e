// Command client is a small CLI for poking a running engine.
//
//	client -addr :50051 submit -side bid -type limit -price 100 -qty 5
//	client -addr :50051 depth -levels 10
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"matchbook/api/pb"
)

func main() {
	addr := flag.String("addr", "localhost:50051", "engine address")
	flag.Parse()

	if flag.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "usage: client [-addr host:port] submit|depth [flags]")
		os.Exit(2)
	}

	conn, err := grpc.NewClient(*addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		fmt.Fprintln(os.Stderr, "connect:", err)
		os.Exit(1)
	}
	defer conn.Close()

	client := pb.NewEngineClient(conn)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	switch flag.Arg(0) {
	case "submit":
		submit(ctx, client, flag.Args()[1:])
	case "depth":
		showDepth(ctx, client, flag.Args()[1:])
	default:
		fmt.Fprintln(os.Stderr, "unknown command:", flag.Arg(0))
		os.Exit(2)
	}
}

func submit(ctx context.Context, client pb.EngineClient, args []string) {
	fs := flag.NewFlagSet("submit", flag.ExitOnError)
	side := fs.String("side", "bid", "bid or ask")
	otype := fs.String("type", "limit", "limit or market")
	price := fs.Int64("price", 0, "limit price in ticks")
	qty := fs.Int64("qty", 0, "quantity")
	fs.Parse(args)

	req := &pb.SubmitRequest{
		Side:  pb.Side_BID,
		Type:  pb.OrderType_LIMIT,
		Price: *price,
		Qty:   *qty,
	}
	if *side == "ask" {
		req.Side = pb.Side_ASK
	}
	if *otype == "market" {
		req.Type = pb.OrderType_MARKET
	}

	resp, err := client.Submit(ctx, req)
	if err != nil {
		fmt.Fprintln(os.Stderr, "submit:", err)
		os.Exit(1)
	}

	fmt.Printf("order %d seq %d status %s remaining %d\n",
		resp.OrderId, resp.Seq, resp.Status, resp.Remaining)
	for _, tr := range resp.Trades {
		fmt.Printf("  trade %d: %d @ %d (maker %d)\n",
			tr.Seq, tr.Qty, tr.Price, tr.MakerId)
	}
}

func showDepth(ctx context.Context, client pb.EngineClient, args []string) {
	fs := flag.NewFlagSet("depth", flag.ExitOnError)
	levels := fs.Uint("levels", 0, "max levels per side (0 = all)")
	fs.Parse(args)

	resp, err := client.Depth(ctx, &pb.DepthRequest{MaxLevels: uint32(*levels)})
	if err != nil {
		fmt.Fprintln(os.Stderr, "depth:", err)
		os.Exit(1)
	}

	fmt.Printf("last_seq %d\n", resp.LastSeq)
	fmt.Println("asks:")
	for i := len(resp.Asks) - 1; i >= 0; i-- {
		lvl := resp.Asks[i]
		fmt.Printf("  %8d x %-8d (%d orders)\n", lvl.Price, lvl.Qty, lvl.Orders)
	}
	fmt.Println("bids:")
	for _, lvl := range resp.Bids {
		fmt.Printf("  %8d x %-8d (%d orders)\n", lvl.Price, lvl.Qty, lvl.Orders)
	}
}
