// Command hashpw prints the bcrypt hash to put in ADMIN_PASSWORD_HASH.
//
//	hashpw -cost 12 < password.txt
package main

import (
    "bufio"
    "flag"
    "fmt"
    "os"
    "strings"

    "github.com/iliyamo/sanadimo/internal/utils"
)

func main() {
    cost := flag.Int("cost", 12, "bcrypt cost")
    flag.Parse()

    line, err := bufio.NewReader(os.Stdin).ReadString('\n')
    if err != nil && line == "" {
        fmt.Fprintln(os.Stderr, "hashpw: read password from stdin:", err)
        os.Exit(1)
    }
    hash, err := utils.HashPassword(strings.TrimRight(line, "\r\n"), *cost)
    if err != nil {
        fmt.Fprintln(os.Stderr, "hashpw:", err)
        os.Exit(1)
    }
    fmt.Println(hash)
}
