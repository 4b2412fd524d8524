// Package logger builds *slog.Logger values through functional options and
// provides attribute helpers shared by the other packages of the module.
//
//	log := logger.New(
//	    logger.WithTextFormatter(),
//	    logger.WithLevel(slog.LevelDebug),
//	)
//	log.Info("Translations loaded", logger.Component("i18n"))
//
// LoadConfig reads LOG_LEVEL, LOG_FORMAT and LOG_SERVICE so the same setup
// can be driven from the environment:
//
//	cfg, err := logger.LoadConfig()
//	if err != nil {
//	    return err
//	}
//	log := logger.New(logger.WithConfig(cfg))
//
// Error and Errors return an empty attribute for nil errors, so they can be
// passed unconditionally.
package logger
