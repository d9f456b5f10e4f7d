package dateengine

// rejectInput logs rejected input at warn level and counts it, for whichever of logger and metrics is configured.
func (e *Engine) rejectInput(operation, input, pattern string, err error) {
	if e.logger != nil {
		args := []any{logAttrOperation, operation, logAttrInput, input, logAttrError, err.Error()}
		if pattern != "" {
			args = append(args, logAttrPattern, pattern)
		}

		e.logger.Warn(logMsgInputRejected, args...)
	}

	if e.metricsCollector != nil {
		e.metricsCollector.IncrementCounter(metricParseErrors, map[string]string{labelOperation: operation})
	}
}
