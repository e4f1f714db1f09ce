package migration

import (
	"errors"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/sirupsen/logrus"
)

// Run aplica as migrações embutidas até Version
func Run(dsn string) error {
	driver, err := iofs.New(FS, "sql")
	if err != nil {
		return err
	}
	defer driver.Close()

	mg, err := migrate.NewWithSourceInstance("iofs", driver, dsn)
	if err != nil {
		return err
	}
	defer mg.Close()

	current, dirty, err := mg.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return err
	}

	if dirty {
		return errors.New("database is in dirty state")
	}

	if err = mg.Migrate(Version); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			logrus.WithField("version", current).Info("Migrações já aplicadas")
			return nil
		}
		return err
	}

	logrus.WithField("version", Version).Info("Migrações aplicadas com sucesso")
	return nil
}
