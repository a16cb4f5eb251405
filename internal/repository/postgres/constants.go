package postgres

import (
	"fmt"
	"time"
)

const (
	poolHealthCheckPeriod = time.Minute
	poolMaxConnLifetime   = time.Hour
	poolMaxConnIdleTime   = 30 * time.Minute
	dbPingTimeout         = 5 * time.Second

	errClientNotFound = "client not found"
	errPhoneNotFound  = "phone not found for client"
	errEmailInUse     = "client with this email already exists"
	errPhoneInUse     = "phone number already belongs to a client"
	errNoUpdateFields = "no fields to update"

	errFailedParseDatabaseConfigFmt  = "failed to parse database config: %w"
	errFailedCreateConnectionPoolFmt = "failed to create connection pool: %w"
	errFailedPingDatabaseFmt         = "failed to ping database: %w"
	errFailedCreateClientsTableFmt   = "failed to create clients table: %w"
	errFailedCreatePhonesTableFmt    = "failed to create phones table: %w"

	errFailedCreateClientFmt  = "failed to create client: %w"
	errFailedGetClientFmt     = "failed to get client: %w"
	errFailedListClientsFmt   = "failed to list clients: %w"
	errFailedSearchClientsFmt = "failed to search clients: %w"
	errFailedScanClientFmt    = "failed to scan client: %w"
	errIterateClientsFmt      = "error iterating clients: %w"
	errFailedUpdateClientFmt  = "failed to update client: %w"
	errFailedDeleteClientFmt  = "failed to delete client: %w"

	errFailedAddPhoneFmt    = "failed to add phone: %w"
	errFailedDeletePhoneFmt = "failed to delete phone: %w"
)

var (
	errFailedParseDatabaseConfig  = func(err error) error { return fmt.Errorf(errFailedParseDatabaseConfigFmt, err) }
	errFailedCreateConnectionPool = func(err error) error { return fmt.Errorf(errFailedCreateConnectionPoolFmt, err) }
	errFailedPingDatabase         = func(err error) error { return fmt.Errorf(errFailedPingDatabaseFmt, err) }
	errFailedCreateClientsTable   = func(err error) error { return fmt.Errorf(errFailedCreateClientsTableFmt, err) }
	errFailedCreatePhonesTable    = func(err error) error { return fmt.Errorf(errFailedCreatePhonesTableFmt, err) }

	errFailedCreateClient  = func(err error) error { return fmt.Errorf(errFailedCreateClientFmt, err) }
	errFailedGetClient     = func(err error) error { return fmt.Errorf(errFailedGetClientFmt, err) }
	errFailedListClients   = func(err error) error { return fmt.Errorf(errFailedListClientsFmt, err) }
	errFailedSearchClients = func(err error) error { return fmt.Errorf(errFailedSearchClientsFmt, err) }
	errFailedScanClient    = func(err error) error { return fmt.Errorf(errFailedScanClientFmt, err) }
	errIterateClients      = func(err error) error { return fmt.Errorf(errIterateClientsFmt, err) }
	errFailedUpdateClient  = func(err error) error { return fmt.Errorf(errFailedUpdateClientFmt, err) }
	errFailedDeleteClient  = func(err error) error { return fmt.Errorf(errFailedDeleteClientFmt, err) }

	errFailedAddPhone    = func(err error) error { return fmt.Errorf(errFailedAddPhoneFmt, err) }
	errFailedDeletePhone = func(err error) error { return fmt.Errorf(errFailedDeletePhoneFmt, err) }
)
