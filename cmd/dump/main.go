// Command dump prints the state of the Challenge contract deployed to a Neo
// blockchain: registered challenges with their participants and winners.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/big"
	"time"

	"github.com/nspcc-dev/challenge-contract/rpc/challenge"
	"github.com/nspcc-dev/neo-go/pkg/encoding/address"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/invoker"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
)

func main() {
	neoRPCEndpoint := flag.String("rpc", "", "Network address of the Neo RPC server")
	contractAddress := flag.String("contract", "", "Address of the Challenge contract")
	maxListItems := flag.Int("max-list-items", 100, "Max number of participants/winners printed per challenge")

	flag.Parse()

	switch {
	case *neoRPCEndpoint == "":
		log.Fatal("missing Neo RPC endpoint")
	case *contractAddress == "":
		log.Fatal("missing Challenge contract address")
	}

	h, err := address.StringToUint160(*contractAddress)
	if err != nil {
		log.Fatal(fmt.Errorf("decode Challenge contract address: %w", err))
	}

	err = dump(*neoRPCEndpoint, h, *maxListItems)
	if err != nil {
		log.Fatal(err)
	}
}

func dump(neoRPCEndpoint string, contract util.Uint160, maxListItems int) error {
	c, err := rpcclient.New(context.Background(), neoRPCEndpoint, rpcclient.Options{
		DialTimeout:    15 * time.Second,
		RequestTimeout: 15 * time.Second,
	})
	if err != nil {
		return fmt.Errorf("RPC client dial: %w", err)
	}

	defer c.Close()

	reader := challenge.NewReader(invoker.New(c, nil), contract)

	count, err := reader.ChallengeCount()
	if err != nil {
		return fmt.Errorf("get number of challenges: %w", err)
	}

	fmt.Printf("challenges: %s\n", count)

	for id := int64(0); id < count.Int64(); id++ {
		ch, err := reader.Get(big.NewInt(id))
		if err != nil {
			return fmt.Errorf("get challenge #%d: %w", id, err)
		}

		fmt.Printf("#%d %q owner=%s reward=%s maxWinners=%s active=%t\n",
			id, ch.Name, address.Uint160ToString(ch.Owner), ch.Reward, ch.MaxWinners, ch.Active)

		err = printIdentities(reader.ListParticipantsExpanded, id, maxListItems, "participant")
		if err != nil {
			return fmt.Errorf("list participants of challenge #%d: %w", id, err)
		}

		err = printIdentities(reader.ListWinnersExpanded, id, maxListItems, "winner")
		if err != nil {
			return fmt.Errorf("list winners of challenge #%d: %w", id, err)
		}
	}

	return nil
}

func printIdentities(list func(*big.Int, int) ([]stackitem.Item, error), id int64, maxItems int, label string) error {
	items, err := list(big.NewInt(id), maxItems)
	if err != nil {
		return err
	}

	for i := range items {
		b, err := items[i].TryBytes()
		if err != nil {
			return fmt.Errorf("item #%d: %w", i, err)
		}

		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return fmt.Errorf("item #%d: %w", i, err)
		}

		fmt.Printf("  %s %s\n", label, address.Uint160ToString(u))
	}

	return nil
}
